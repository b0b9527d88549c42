package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/aimericdrk/ai-fall-guard/internal/client"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const envAPIURL = "FALLDASH_API_URL"

type rootOptions struct {
	apiURL    string
	tokenFile string
	timeout   time.Duration
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "falldash",
		Short:         "Terminal dashboard for fall events and notifications",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(out)

	defaultURL := os.Getenv(envAPIURL)
	if defaultURL == "" {
		defaultURL = client.DefaultBaseURL
	}
	cmd.PersistentFlags().StringVar(&opts.apiURL, "api-url", defaultURL, "API base URL (env "+envAPIURL+")")
	cmd.PersistentFlags().StringVar(&opts.tokenFile, "token-file", "", "Where the access token is stored (default: user config dir)")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", client.DefaultTimeout, "Request timeout")

	cmd.AddCommand(
		newLoginCmd(opts),
		newRegisterCmd(opts),
		newLogoutCmd(opts),
		newOverviewCmd(opts),
		newAckEventCmd(opts),
		newAckNotificationCmd(opts),
		newReadCmd(opts),
	)

	return cmd
}

func (o *rootOptions) client() (*client.Client, error) {
	path := o.tokenFile
	if path == "" {
		var err error
		if path, err = client.DefaultTokenPath(); err != nil {
			return nil, err
		}
	}

	return client.New(client.Options{
		BaseURL: o.apiURL,
		Timeout: o.timeout,
		Tokens:  client.NewFileTokenStore(path),
	}), nil
}

func newLoginCmd(opts *rootOptions) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the access token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}
			if password == "" {
				if password, err = promptPassword(cmd); err != nil {
					return err
				}
			}

			session, err := c.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s %s <%s>\n", session.User.FirstName, session.User.LastName, session.User.Email)

			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password (prompted when omitted)")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newRegisterCmd(opts *rootOptions) *cobra.Command {
	var req client.RegisterRequest

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and store the access token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}
			if req.Password == "" {
				if req.Password, err = promptPassword(cmd); err != nil {
					return err
				}
			}

			session, err := c.Register(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Registered %s (id %s)\n", session.User.Email, session.User.ID)

			return nil
		},
	}
	cmd.Flags().StringVar(&req.Email, "email", "", "Account email")
	cmd.Flags().StringVar(&req.Password, "password", "", "Account password, at least 6 characters (prompted when omitted)")
	cmd.Flags().StringVar(&req.FirstName, "first-name", "", "First name")
	cmd.Flags().StringVar(&req.LastName, "last-name", "", "Last name")
	cmd.Flags().StringVar(&req.PhoneNumber, "phone", "", "Phone number")
	for _, name := range []string{"email", "first-name", "last-name"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

func newLogoutCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored access token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}
			if err := c.Logout(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")

			return nil
		},
	}
}

func newOverviewCmd(opts *rootOptions) *cobra.Command {
	var days, limit int

	cmd := &cobra.Command{
		Use:   "overview",
		Short: "Show stats, recent fall events and notifications",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}

			snapshot, err := client.NewDashboard(c, days).Load(cmd.Context())
			if err != nil {
				return err
			}

			return renderSnapshot(cmd.OutOrStdout(), snapshot, limit, time.Now())
		},
	}
	cmd.Flags().IntVar(&days, "days", client.DefaultStatsDays, "Stats window in days (1-365)")
	cmd.Flags().IntVar(&limit, "limit", 5, "Rows shown per table")

	return cmd
}

func newAckEventCmd(opts *rootOptions) *cobra.Command {
	var (
		falseAlarm bool
		reason     string
	)

	cmd := &cobra.Command{
		Use:   "ack-event ID",
		Short: "Acknowledge a fall event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}
			if reason != "" && !falseAlarm {
				return errors.New("--reason only applies together with --false-alarm")
			}

			event, err := client.NewDashboard(c, 0).AcknowledgeEvent(cmd.Context(), args[0], falseAlarm, reason)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Fall event %s acknowledged (%s)\n", event.ID, verdict(event))

			return nil
		},
	}
	cmd.Flags().BoolVar(&falseAlarm, "false-alarm", false, "Mark the event as a false alarm")
	cmd.Flags().StringVar(&reason, "reason", "", "Why the event is a false alarm")

	return cmd
}

func newAckNotificationCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ack-notification ID",
		Short: "Acknowledge a notification",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}

			notification, err := client.NewDashboard(c, 0).AcknowledgeNotification(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Notification %s acknowledged\n", notification.ID)

			return nil
		},
	}
}

func newReadCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "read ID",
		Short: "Mark a notification as read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}

			notification, err := client.NewDashboard(c, 0).MarkRead(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Notification %s marked as read\n", notification.ID)

			return nil
		},
	}
}

// promptPassword reads the password without echo when stdin is a terminal.
func promptPassword(cmd *cobra.Command) (string, error) {
	fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
	defer fmt.Fprintln(cmd.ErrOrStderr())

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		raw, err := term.ReadPassword(fd)
		if err != nil {
			return "", errors.Wrap(err, "read password")
		}

		return string(raw), nil
	}

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", errors.Wrap(err, "read password")
	}

	return strings.TrimRight(line, "\r\n"), nil
}

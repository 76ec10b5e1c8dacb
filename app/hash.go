package app

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/teca-org/teca-web/internal/auth"
)

// ErrEmptyPassword is returned by hash-password for an empty input.
var ErrEmptyPassword = errors.New("password cannot be empty")

func init() { //nolint: gochecknoinits
	rootCmd.AddCommand(hashPasswordCmd)
}

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password [password]",
	Short: "Print the argon2id hash for an Accounts entry of main.toml",
	Long: `Print the argon2id hash for the PasswordHash field of an Accounts entry.
Without an argument the password is read from the first line of stdin.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var password string

		if len(args) == 1 {
			password = args[0]
		} else {
			line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if err != nil && line == "" {
				return errors.Wrap(err, "failed to read password")
			}

			password = strings.TrimRight(line, "\r\n")
		}

		if password == "" {
			return ErrEmptyPassword
		}

		hash, err := auth.HashPassword(password)
		if err != nil {
			return errors.Wrap(err, "failed to hash password")
		}

		_, err = fmt.Fprintln(cmd.OutOrStdout(), hash)

		return err
	},
}

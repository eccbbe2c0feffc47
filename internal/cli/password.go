package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xy-planning-network/microapp/auth"
)

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password [password]",
	Short: "Print the bcrypt hash of a password for authInfo.password",
	Long: `Print the bcrypt hash to store as authInfo.password in a micro-app's config.json.

Without an argument, the password is read twice from the terminal without echo.

Example:
  microapp hash-password
  microapp hash-password 'correct horse battery staple'`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHashPassword,
}

var (
	encryptPassword string
)

var encryptCmd = &cobra.Command{
	Use:   "encrypt <value>",
	Short: "Encrypt a value so the authenticated user's micro-app can decrypt it",
	Long: `Encrypt a value with the password a user authenticates with.

A micro-app receives a decrypter for the authenticated user's password
and can open the printed ciphertext with it, for example
to keep credentials out of plain text in config.json.

Without --password, the password is read twice from the terminal without echo.

Example:
  microapp encrypt 's3cret-api-key'`,
	Args: cobra.ExactArgs(1),
	RunE: runEncrypt,
}

func init() {
	encryptCmd.Flags().StringVar(&encryptPassword, "password", "", "Password the value is encrypted for")
	rootCmd.AddCommand(hashPasswordCmd)
	rootCmd.AddCommand(encryptCmd)
}

func runHashPassword(cmd *cobra.Command, args []string) error {
	password, err := passwordFrom(args)
	if err != nil {
		return err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), hash)
	return nil
}

func runEncrypt(cmd *cobra.Command, args []string) error {
	var pwArgs []string
	if encryptPassword != "" {
		pwArgs = []string{encryptPassword}
	}

	password, err := passwordFrom(pwArgs)
	if err != nil {
		return err
	}

	ciphertext, err := auth.Encrypt(args[0], password)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), ciphertext)
	return nil
}

// passwordFrom returns the first of args or prompts for a password when there is none.
var passwordFrom = func(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	return auth.PromptAndConfirmPassword()
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ninefold/novena/pkg/cipher"
)

var cryptoCmd = &cobra.Command{
	Use:   "crypto",
	Short: "Encrypt and decrypt text with the ninefold cipher",
	Long: `The classic mode rotates characters by the key's energy stream. It is
reversible and keyed but NOT cryptographically secure. Pass --secure
for PBKDF2-derived AES-256-GCM.`,
}

var encryptCmd = &cobra.Command{
	Use:   "encrypt [text]",
	Short: "Encrypt text",
	RunE:  func(cmd *cobra.Command, args []string) error { return runCrypto(cmd, args, true) },
}

var decryptCmd = &cobra.Command{
	Use:   "decrypt [text]",
	Short: "Decrypt text",
	RunE:  func(cmd *cobra.Command, args []string) error { return runCrypto(cmd, args, false) },
}

func runCrypto(cmd *cobra.Command, args []string, encrypt bool) error {
	text, err := readText(cmd, args)
	if err != nil {
		return err
	}
	key, _ := cmd.Flags().GetString("key")
	secure, _ := cmd.Flags().GetBool("secure")

	var out string
	switch {
	case secure && encrypt:
		out, err = cipher.EncryptSecure(text, key)
	case secure:
		out, err = cipher.DecryptSecure(text, key)
	default:
		p, perr := loadPrinciple(cmd)
		if perr != nil {
			return perr
		}
		if encrypt {
			out, err = cipher.Encrypt(text, key, p)
		} else {
			out, err = cipher.Decrypt(text, key, p)
		}
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func init() {
	for _, c := range []*cobra.Command{encryptCmd, decryptCmd} {
		c.Flags().StringP("key", "k", "", "Cipher key or passphrase")
		_ = c.MarkFlagRequired("key")
		c.Flags().Bool("secure", false, "Use PBKDF2 + AES-256-GCM instead of the classic rotation cipher")
		cryptoCmd.AddCommand(c)
	}
	rootCmd.AddCommand(cryptoCmd)
}

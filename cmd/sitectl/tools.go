package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"elextrio-site/internal/config"
	"elextrio-site/internal/infrastructure/backup"
	"elextrio-site/internal/infrastructure/email"
	ucauth "elextrio-site/internal/usecase/auth"

	"github.com/spf13/cobra"
)

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password [password]",
	Short: "Print a bcrypt hash for ADMIN_PASSWORD_HASH",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pw := ""
		if len(args) == 1 {
			pw = args[0]
		} else {
			line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if err != nil && line == "" {
				return fmt.Errorf("read password: %w", err)
			}
			pw = strings.TrimRight(line, "\r\n")
		}
		hash, err := ucauth.HashPassword(pw)
		if err != nil {
			return fmt.Errorf("password must be at least 8 characters: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), hash)
		return nil
	},
}

var testEmailTo string

var testEmailCmd = &cobra.Command{
	Use:   "test-email",
	Short: "Send a test notification through Resend",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		sender := email.NewResendSender(cfg.Email, log.New(os.Stderr, "", log.LstdFlags))

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		sent, err := sender.SendTest(ctx, testEmailTo)
		if err != nil {
			return err
		}
		if sender.Simulated() {
			fmt.Fprintln(cmd.OutOrStdout(), "RESEND_API_KEY not set, email was simulated")
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "sent=%t\n", sent)
		return nil
	},
}

var messagesFile string

var messagesCmd = &cobra.Command{
	Use:   "messages",
	Short: "List contact messages from the local backup file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := messagesFile
		if path == "" {
			path = os.Getenv("CONTACT_BACKUP_FILE")
		}
		if path == "" {
			path = "data/contact-messages.json"
		}
		entries, err := backup.NewFileStore(path).All()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(entries) == 0 {
			fmt.Fprintln(out, "No messages found.")
			return nil
		}
		for _, e := range entries {
			fmt.Fprintf(out, "%s  %s <%s>\n", e.Timestamp, e.Name, e.Email)
			if e.Company != "" {
				fmt.Fprintf(out, "  company: %s\n", e.Company)
			}
			fmt.Fprintf(out, "  %s\n\n", strings.ReplaceAll(e.Message, "\n", "\n  "))
		}
		return nil
	},
}

func init() {
	testEmailCmd.Flags().StringVar(&testEmailTo, "to", "", "recipient (defaults to NOTIFICATION_EMAIL)")
	messagesCmd.Flags().StringVar(&messagesFile, "file", "", "backup file (defaults to CONTACT_BACKUP_FILE)")
}

package main

import (
	"context"
	"fmt"
	"io"

	tea "charm.land/bubbletea/v2"
	"github.com/clarktrimble/sabot"
	"github.com/spf13/cobra"

	"kassa"
	"kassa/account"
	"kassa/category"
	nt "kassa/entity"
	"kassa/ingest/duck"
	"kassa/statement"
	"kassa/store/lite"
	"kassa/util"
)

const configFile = "kassa.yaml"

func newRootCommand() *cobra.Command {

	rootCmd := &cobra.Command{
		Use:   "kassa",
		Short: "Bookkeeping for people with a shoebox of bank statements",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newCategoryCommand())
	rootCmd.AddCommand(newAccountCommand())
	rootCmd.AddCommand(newImportCommand())
	rootCmd.AddCommand(newTuiCommand())
	rootCmd.AddCommand(newConfigCommand())

	return rootCmd
}

// app holds what every subcommand needs: the store, a logger writing
// to the configured log file, and the config itself.
type app struct {
	cfg     kassa.Config
	store   *lite.Lite
	logger  nt.Logger
	logFile io.Writer
}

func openApp() (ap *app, err error) {

	cfg, err := kassa.LoadConfig(configFile)
	if err != nil {
		return
	}

	logFile := util.OpenLog(cfg.LogPath, 0644)
	logger := &sabot.Sabot{Writer: logFile}

	store, err := lite.New(cfg.DbPath, logger)
	if err != nil {
		util.CloseLog(logFile)
		return
	}

	ap = &app{
		cfg:     cfg,
		store:   store,
		logger:  logger,
		logFile: logFile,
	}
	return
}

func (ap *app) close() {
	ap.store.Close()
	util.CloseLog(ap.logFile)
}

// category

func newCategoryCommand() *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "category",
		Short: "Manage debit and credit categories",
	}
	cmd.PersistentFlags().StringVar(&kind, "kind", "debit", "category kind (debit or credit)")

	addCmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			knd, err := parseKind(kind)
			if err != nil {
				return err
			}

			ap, err := openApp()
			if err != nil {
				return err
			}
			defer ap.close()

			svc := category.NewService(ap.store, ap.logger)
			_, warnings, err := svc.Add(context.Background(), knd, args[0])
			if err != nil {
				return err
			}

			for _, name := range warnings {
				fmt.Printf("warning: similar category exists: %s\n", name)
			}
			fmt.Printf("added %s category %q\n", knd, args[0])
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			knd, err := parseKind(kind)
			if err != nil {
				return err
			}

			ap, err := openApp()
			if err != nil {
				return err
			}
			defer ap.close()

			svc := category.NewService(ap.store, ap.logger)
			cats, err := svc.List(context.Background(), knd)
			if err != nil {
				return err
			}

			for _, cat := range cats {
				fmt.Println(cat.Name)
			}
			return nil
		},
	}

	cmd.AddCommand(addCmd)
	cmd.AddCommand(listCmd)
	return cmd
}

// account

func newAccountCommand() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "account",
		Short: "Manage bank accounts",
	}

	addCmd := &cobra.Command{
		Use:   "add <name> <iban>",
		Short: "Register a bank account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ap, err := openApp()
			if err != nil {
				return err
			}
			defer ap.close()

			svc := account.NewService(ap.store, ap.logger)
			_, err = svc.Register(context.Background(), args[0], args[1])
			if err != nil {
				return err
			}

			fmt.Printf("added account %q\n", args[0])
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List bank accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ap, err := openApp()
			if err != nil {
				return err
			}
			defer ap.close()

			svc := account.NewService(ap.store, ap.logger)
			accts, err := svc.List(context.Background())
			if err != nil {
				return err
			}

			for _, acct := range accts {
				fmt.Printf("%s\t%s\n", acct.Name, acct.Iban)
			}
			return nil
		},
	}

	cmd.AddCommand(addCmd)
	cmd.AddCommand(listCmd)
	return cmd
}

// import

func newImportCommand() *cobra.Command {
	var accountName string

	cmd := &cobra.Command{
		Use:   "import <statement.csv>",
		Short: "Import a bank statement, skipping lines already seen",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ap, err := openApp()
			if err != nil {
				return err
			}
			defer ap.close()

			reader, err := duck.New(ap.logger)
			if err != nil {
				return err
			}
			defer reader.Close()

			accounts := account.NewService(ap.store, ap.logger)
			importer := statement.NewImporter(ap.store, accounts, reader, ap.logger)

			count, err := importer.Import(context.Background(), accountName, args[0])
			if err != nil {
				return err
			}

			fmt.Printf("imported %d transactions into %q\n", count, accountName)
			return nil
		},
	}

	cmd.Flags().StringVar(&accountName, "account", "", "account to import into (required)")
	_ = cmd.MarkFlagRequired("account")

	return cmd
}

// tui

func newTuiCommand() *cobra.Command {

	return &cobra.Command{
		Use:   "tui",
		Short: "Edit categories in a terminal UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ap, err := openApp()
			if err != nil {
				return err
			}
			defer ap.close()

			ctx := context.Background()
			svc := category.NewService(ap.store, ap.logger)

			model, err := kassa.NewModel(ctx, svc, ap.store.Name(), ap.logger)
			if err != nil {
				return err
			}

			_, err = tea.NewProgram(model).Run()
			return err
		},
	}
}

// config

func newConfigCommand() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write kassa.yaml with the settings in effect",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := kassa.LoadConfig(configFile)
			if err != nil {
				return err
			}

			err = util.WriteConfig(cfg, configFile, 0644)
			if err != nil {
				return err
			}

			fmt.Printf("wrote %s\n", configFile)
			return nil
		},
	}

	cmd.AddCommand(initCmd)
	return cmd
}

func parseKind(in string) (nt.Kind, error) {

	switch in {
	case "debit":
		return nt.Debit, nil
	case "credit":
		return nt.Credit, nil
	}
	return "", fmt.Errorf("unknown kind %q, want debit or credit", in)
}

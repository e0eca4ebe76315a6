package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/erpwebapps247-cloud/BT-Thu-hoach-P3-5APP/internal/contract"
	"github.com/erpwebapps247-cloud/BT-Thu-hoach-P3-5APP/internal/repository"
)

func newContractCmd() *cobra.Command {
	var (
		flagTemplate string
		flagOut      string
	)

	cmd := &cobra.Command{
		Use:   "contract <id-number>",
		Short: "Render a labor contract for a stored citizen ID card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			idNumber := args[0]

			db, err := repository.Open(ctx, repository.Config{
				Path:        cfg.Database.Path,
				DialTimeout: cfg.Database.DialTimeout,
				BusyTimeout: cfg.Database.BusyTimeout,
			}, logger)
			if err != nil {
				return err
			}
			defer repository.Close(db, logger)

			card, err := repository.NewIdentityRepository(db, logger).FindByIDNumber(ctx, idNumber)
			if err != nil {
				return err
			}
			if card == nil {
				return fmt.Errorf("no stored card with number %s", idNumber)
			}

			tmpl := flagTemplate
			if tmpl == "" {
				tmpl = cfg.Contract.TemplatePath
			}
			text, err := contract.RenderFile(tmpl, card.Identity, time.Now())
			if err != nil {
				return err
			}

			if flagOut == "" {
				fmt.Print(text)
				return nil
			}
			if err := os.WriteFile(flagOut, []byte(text), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", flagOut, err)
			}
			logger.Info("contract.written", "path", flagOut, "id_number", idNumber)
			return nil
		},
	}

	cmd.Flags().StringVarP(&flagTemplate, "template", "t", "", "contract template file (defaults to BIZDOC_CONTRACT_TEMPLATE)")
	cmd.Flags().StringVarP(&flagOut, "out", "o", "", "output file (defaults to stdout)")
	return cmd
}

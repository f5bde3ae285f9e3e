package cmd

import (
	"context"
	"fmt"

	"github.com/diegoclair/slack-duty-bot/internal/domain"
	"github.com/diegoclair/slack-duty-bot/internal/domain/entity"
	"github.com/diegoclair/slack-duty-bot/internal/domain/service"
	"github.com/slack-go/slack"
	"github.com/spf13/cobra"
)

var notify bool

var dutyCmd = &cobra.Command{
	Use:   "duty",
	Short: "Inspect or move the cleaning duty rotation",
}

var dutyCurrentCmd = &cobra.Command{
	Use:   "current",
	Short: "Print the pair currently on duty",
	RunE: runDuty(func(ctx context.Context, svc *service.Instance) (entity.Pair, error) {
		return svc.Duty.Current(ctx)
	}),
}

var dutyAdvanceCmd = &cobra.Command{
	Use:   "advance",
	Short: "Retire the current pair and pick the next one",
	RunE: runDuty(func(ctx context.Context, svc *service.Instance) (entity.Pair, error) {
		return svc.Duty.Advance(ctx)
	}),
}

var dutyRestartCmd = &cobra.Command{
	Use:   "restart",
	Short: "Start a new rotation loop",
	RunE: runDuty(func(ctx context.Context, svc *service.Instance) (entity.Pair, error) {
		return svc.Duty.Restart(ctx)
	}),
}

func runDuty(op func(ctx context.Context, svc *service.Instance) (entity.Pair, error)) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		db, err := openStore()
		if err != nil {
			return err
		}
		defer db.Close()

		svc, err := newServices(db, slack.New(cfg.SlackBotToken))
		if err != nil {
			return err
		}

		pair, err := op(cmd.Context(), svc)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), domain.FormatPair(pair))

		if notify {
			return svc.Notifier.AnnouncePair(pair)
		}
		return nil
	}
}

func init() {
	dutyAdvanceCmd.Flags().BoolVar(&notify, "notify", false, "post the new pair to the announcement channel")
	dutyRestartCmd.Flags().BoolVar(&notify, "notify", false, "post the new pair to the announcement channel")

	dutyCmd.AddCommand(dutyCurrentCmd)
	dutyCmd.AddCommand(dutyAdvanceCmd)
	dutyCmd.AddCommand(dutyRestartCmd)
}

// Package statement prints the provider statement for a time range, the
// same rows GetStatement returns to the payment provider.
package statement

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/texnokross/texnokross/internal/application/merchant"
	"github.com/texnokross/texnokross/internal/application/notification"
	orderapp "github.com/texnokross/texnokross/internal/application/order"
	vo "github.com/texnokross/texnokross/internal/domain/payment/valueobjects"
	"github.com/texnokross/texnokross/internal/infrastructure/repository"
	"github.com/texnokross/texnokross/internal/infrastructure/storage"
	"github.com/texnokross/texnokross/internal/interfaces/cli/clienv"
	"github.com/texnokross/texnokross/internal/shared/biztime"
	"github.com/texnokross/texnokross/internal/shared/logger"
)

var (
	env       string
	configDir string
	from      string
	to        string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "statement",
		Short: "Print provider transactions created in a time range",
		Long: `Print the transactions whose provider create time falls in [from, to].
Bounds accept YYYY-MM-DD in the business timezone or epoch milliseconds.
A date given to --to covers the whole day.`,
		RunE: run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&configDir, "config-dir", "c", "", "Directory holding config.yaml (default: ./configs)")
	cmd.Flags().StringVar(&from, "from", "", "Range start (YYYY-MM-DD or epoch ms)")
	cmd.Flags().StringVar(&to, "to", "", "Range end (YYYY-MM-DD or epoch ms, default: now)")
	_ = cmd.MarkFlagRequired("from")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := clienv.Init(env, configDir)
	if err != nil {
		return err
	}
	log := logger.NewLogger().Named("statement")

	fromMs, err := ParseBound(from, false)
	if err != nil {
		return fmt.Errorf("invalid --from: %w", err)
	}
	toMs := vo.EpochMillisOf(time.Now())
	if to != "" {
		if toMs, err = ParseBound(to, true); err != nil {
			return fmt.Errorf("invalid --to: %w", err)
		}
	}
	if toMs < fromMs {
		return fmt.Errorf("--to is before --from")
	}

	backend, err := storage.Open(cmd.Context(), storage.Options{
		Storage:  cfg.Storage,
		Database: cfg.Database,
		Redis:    cfg.Redis,
	}, log)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer func() {
		if err := backend.Close(); err != nil {
			log.Warnw("failed to close storage", "error", err)
		}
	}()

	orders := repository.NewOrderRepository(backend.Store)
	svc := merchant.NewService(
		orders,
		repository.NewTransactionRepository(backend.Store),
		orderapp.NewService(orders, notification.NoopNotifier{}, cfg.Payme.OrderTTL(), log),
		log,
	)

	result, err := svc.GetStatement(cmd.Context(), fromMs, toMs)
	if err != nil {
		return err
	}
	return Render(cmd.OutOrStdout(), result)
}

// ParseBound reads a range bound. A calendar date maps to the start of the
// business day, or to its last millisecond when endOfDay is set.
func ParseBound(s string, endOfDay bool) (vo.EpochMillis, error) {
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		if ms < 0 {
			return 0, fmt.Errorf("negative timestamp %d", ms)
		}
		return vo.EpochMillis(ms), nil
	}
	day, err := biztime.ParseDate(s)
	if err != nil {
		return 0, err
	}
	if endOfDay {
		day = biztime.EndOfDay(day)
	}
	return vo.EpochMillisOf(day), nil
}

// Render writes the statement as a table followed by a totals line.
func Render(w io.Writer, result *merchant.StatementResult) error {
	table := tablewriter.NewWriter(w)
	table.Header("Payme ID", "Order", "Amount", "Created", "Performed", "Cancelled", "State", "Reason")

	var performed int64
	for _, e := range result.Transactions {
		if vo.TransactionState(e.State) == vo.StatePerformed {
			performed += e.Amount
		}
		if err := table.Append([]string{
			e.ID,
			e.Account.OrderID,
			notification.FormatSum(e.Amount / 100),
			formatMillis(e.CreateTime),
			formatMillis(e.PerformTime),
			formatMillis(e.CancelTime),
			strconv.Itoa(e.State),
			reasonText(e.Reason),
		}); err != nil {
			return fmt.Errorf("failed to append row: %w", err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	_, err := fmt.Fprintf(w, "%d transaction(s), performed total %s\n",
		len(result.Transactions), notification.FormatSum(performed/100))
	return err
}

func formatMillis(ms int64) string {
	if ms == 0 {
		return "-"
	}
	return biztime.Format(vo.EpochMillis(ms).Time())
}

func reasonText(r *int) string {
	if r == nil {
		return "-"
	}
	return fmt.Sprintf("%d %s", *r, vo.CancelReason(*r).Text())
}

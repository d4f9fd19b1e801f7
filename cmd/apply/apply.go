// Package apply implements the apply command, which submits a business
// funding application.
package apply

import (
	"context"
	"fmt"
	"io"

	"fjacquet/creditlens/cmd/root"
	"fjacquet/creditlens/internal/container"
	"fjacquet/creditlens/internal/models"

	"github.com/spf13/cobra"
)

var (
	app   models.FundingApplication
	guest bool
)

// Cmd represents the apply command
var Cmd = &cobra.Command{
	Use:   "apply",
	Short: "Submit a business funding application",
	Long: `Apply validates and submits a funding application. When a session is
stored (see login) the application is submitted for that user; otherwise,
or with --guest, it is submitted as a guest.

Example:
  creditlens apply --name "Jane Doe" --email jane@example.com --phone 555-0100 \
    --amount 25000 --has-business-entity yes --report report.pdf`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := root.GetContainer()
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		return Run(ctx, c, app, guest, cmd.OutOrStdout())
	},
}

func init() {
	Cmd.Flags().StringVar(&app.Name, "name", "", "Full name")
	Cmd.Flags().StringVar(&app.Email, "email", "", "Email address")
	Cmd.Flags().StringVar(&app.Phone, "phone", "", "Phone number")
	Cmd.Flags().StringVar(&app.BusinessName, "business-name", "", "Business name")
	Cmd.Flags().StringVar(&app.FundingAmount, "amount", "", "Requested funding amount")
	Cmd.Flags().StringVar(&app.HasBusinessEntity, "has-business-entity", "", "Registered business entity: yes or no")
	Cmd.Flags().StringVar(&app.CreditScore, "credit-score", "", "Current credit score (300-850)")
	Cmd.Flags().StringVar(&app.CreditReportPath, "report", "", "Credit report file to attach")
	Cmd.Flags().BoolVar(&guest, "guest", false, "Submit as guest even when logged in")
}

// Run submits application and reports how it was sent.
func Run(ctx context.Context, c *container.Container, application models.FundingApplication, asGuest bool, stdout io.Writer) error {
	receipt, err := c.GetFundingService().Submit(ctx, application, asGuest)
	if err != nil {
		return err
	}
	if receipt.Guest {
		_, err = fmt.Fprintln(stdout, "Application submitted successfully as guest.")
		return err
	}
	_, err = fmt.Fprintf(stdout, "Application submitted successfully for %s.\n", receipt.Username)
	return err
}

package rowwriter

import (
	"io"
	"strconv"

	"github.com/abscore/abscore/internal/domain"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// writeTable prints a ranked leaderboard for the terminal.
func writeTable(w io.Writer, rows []domain.ResultRow) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{
		"Rank", "Team", "Design", "Challenge",
		"ΔG", "Contacts", "Conf", "Sol", "CDR3 id",
		"Bind", "Dev", "Nov", "Score", "Status",
	})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()

	var data [][]string
	for i, r := range rows {
		status := green("viable")
		if !r.IsViable {
			reason := "not viable"
			if r.FailReason != nil {
				reason = *r.FailReason
			}
			status = red(reason)
		}
		data = append(data, []string{
			strconv.Itoa(i + 1),
			r.Team,
			r.DesignID,
			r.Challenge,
			optNumber(r.BindingEnergy, 2),
			optCount(r.Contacts),
			optNumber(r.InterfaceConfidence, 3),
			optNumber(r.Solubility, 3),
			optNumber(r.CDR3Identity, 1),
			number(r.BindingStructuralScore, 2),
			number(r.DevelopabilityScore, 2),
			number(r.NoveltyCategoryScore, 2),
			number(r.FinalScore100, 1),
			status,
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

func number(v float64, prec int) string {
	return printer.Sprintf("%.*f", prec, v)
}

func optNumber(v *float64, prec int) string {
	if v == nil {
		return "–"
	}
	return number(*v, prec)
}

func optCount(v *int64) string {
	if v == nil {
		return "–"
	}
	return printer.Sprintf("%d", *v)
}

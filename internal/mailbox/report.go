package mailbox

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/eugenenazirov/mailbox-postage/internal/postage"
)

// Display writes the postage report to w: the total, one block per item in
// insertion order, and the invalid-mail count.
func (m *Mailbox) Display(w io.Writer) error {
	entries := m.Entries()
	total := 0.0
	invalid := 0
	for _, e := range entries {
		total += e.Item.CalculatePostage()
		if !postage.HasDestination(e.Item) {
			invalid++
		}
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "The total amount of postage is %s\n", formatAmount(total))
	for _, e := range entries {
		item := e.Item
		fmt.Fprintln(bw, item.Kind())
		if !postage.HasDestination(item) {
			fmt.Fprintln(bw, "(Invalid courier)")
			continue
		}
		fmt.Fprintf(bw, "Weight: %s grams\n", formatAmount(item.Weight()))
		fmt.Fprintf(bw, "Express: %s\n", yesNo(item.ShippingMethod().IsExpress()))
		fmt.Fprintf(bw, "Destination: %s\n", item.Destination())
		fmt.Fprintf(bw, "Price: $%s\n", formatAmount(item.CalculatePostage()))
	}
	fmt.Fprintf(bw, "The box contains %d invalid mails\n", invalid)

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// formatAmount renders v in its shortest round-trip decimal form.
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

package mailbox

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/eugenenazirov/mailbox-postage/internal/postage"
)

func TestDisplay(t *testing.T) {
	t.Parallel()

	box := New()
	box.AddMailItem(postage.NewLetter(500, postage.Normal, "Geneva", postage.A4))
	box.AddMailItem(postage.NewAdvertisement(800, postage.Normal, ""))
	box.AddMailItem(postage.NewParcel(1000, postage.Express, "Basel", 4))

	var buf bytes.Buffer
	if err := box.Display(&buf); err != nil {
		t.Fatalf("Display returned error: %v", err)
	}

	want := strings.Join([]string{
		"The total amount of postage is 7",
		"Letter",
		"Weight: 500 grams",
		"Express: no",
		"Destination: Geneva",
		"Price: $3",
		"Parcel",
		"Weight: 1000 grams",
		"Express: yes",
		"Destination: Basel",
		"Price: $4",
		"The box contains 0 invalid mails",
		"",
	}, "\n")
	if got := buf.String(); got != want {
		t.Fatalf("unexpected report:\n%s\nwant:\n%s", got, want)
	}
}

func TestDisplayEmptyMailbox(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := New().Display(&buf); err != nil {
		t.Fatalf("Display returned error: %v", err)
	}

	want := "The total amount of postage is 0\nThe box contains 0 invalid mails\n"
	if got := buf.String(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestDisplayMarksInvalidCourier(t *testing.T) {
	t.Parallel()

	box := New()
	box.entries = append(box.entries, Entry{Item: postage.NewAdvertisement(1000, postage.Normal, "")})

	var buf bytes.Buffer
	if err := box.Display(&buf); err != nil {
		t.Fatalf("Display returned error: %v", err)
	}

	got := buf.String()
	if !strings.Contains(got, "Advertisement\n(Invalid courier)\n") {
		t.Fatalf("expected invalid courier marker, got:\n%s", got)
	}
	if !strings.HasSuffix(got, "The box contains 1 invalid mails\n") {
		t.Fatalf("expected invalid count line, got:\n%s", got)
	}
}

func TestDisplayReportsWriteErrors(t *testing.T) {
	t.Parallel()

	box := New()
	box.AddMailItem(postage.NewLetter(1, postage.Normal, "Sion", postage.A4))

	if err := box.Display(failingWriter{}); !errors.Is(err, errWrite) {
		t.Fatalf("expected write error, got %v", err)
	}
}

func TestFormatAmount(t *testing.T) {
	t.Parallel()

	cases := map[float64]string{
		0:     "0",
		7.4:   "7.4",
		52.5:  "52.5",
		200:   "200",
		-5:    "-5",
		0.125: "0.125",
	}
	for in, want := range cases {
		if got := formatAmount(in); got != want {
			t.Fatalf("formatAmount(%v): expected %s, got %s", in, want, got)
		}
	}
}

var errWrite = errors.New("boom")

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }

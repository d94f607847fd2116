// Command contact submits the site's contact form from a terminal.
//
//	contact -endpoint http://localhost:8080/api/contact \
//	    -name "Dr. Smith" -email smith@example.com -message "Interested"
//
// It exits non-zero when the server rejects the submission.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/ecpw/site/pkg/contactform"
	"github.com/ecpw/site/pkg/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	endpoint := flag.String("endpoint", "http://localhost:8080/api/contact", "contact endpoint URL")
	timeout := flag.Duration("timeout", 30*time.Second, "request timeout")
	verbose := flag.Bool("v", false, "log every status transition")

	values := make(map[string]*string, len(contactform.Fields))
	for _, f := range contactform.Fields {
		values[f] = flag.String(f, "", "form field "+f)
	}
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	log := logger.New(level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, *timeout)
	defer cancel()

	form := contactform.New(*endpoint,
		contactform.WithOnChange(func(s contactform.State) {
			log.Debug("form status", slog.String("status", string(s.Status)), slog.String("error", s.Error))
		}),
	)
	defer form.Close()

	for _, f := range contactform.Fields {
		if err := form.Set(f, *values[f]); err != nil {
			log.Error("invalid field", slog.Any("error", err))
			return 2
		}
	}

	state, err := form.Submit(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		return 2
	}

	if state.Status != contactform.StatusSent {
		fmt.Fprintln(os.Stderr, "not sent:", state.Error)
		return 1
	}
	fmt.Println("sent")
	return 0
}

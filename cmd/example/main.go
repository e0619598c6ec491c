package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"strings"

	translatable "github.com/goliatone/go-translatable"
)

func main() {
	dsn := flag.String("dsn", "file:translatable_example?mode=memory&cache=shared&_fk=1", "sqlite dsn")
	verbose := flag.Bool("verbose", false, "enable console logging")
	flag.Parse()

	ctx := context.Background()

	cfg := translatable.DefaultConfig()
	cfg.Storage.Provider = "bun"
	cfg.Storage.Dialect = "sqlite"
	cfg.Storage.DSN = *dsn
	cfg.Field.PriorityLanguages = []string{"de", "es"}
	if *verbose {
		cfg.Features.Logger = true
		cfg.Logging.Level = "debug"
	}

	module, err := translatable.New(cfg)
	if err != nil {
		log.Fatalf("initialise module: %v", err)
	}
	defer module.Close()

	record, err := module.Records().Create(ctx, &translatable.Record{Slug: "home", Kind: "page"})
	if err != nil {
		log.Fatalf("create record: %v", err)
	}

	title := module.Field("Title").RequiredLanguages("en", "fr").Textarea().Build()

	fmt.Printf("Field %q (attribute %s)\n", title.Label(), title.Attribute())
	for _, def := range title.Definitions() {
		fmt.Printf("  sub-field %s: widget=%s options=%d\n", def.Name, def.Widget, len(def.Options))
	}
	fmt.Printf("  first codes: %s\n", strings.Join(firstCodes(title.EffectiveLanguageCodes(), 5), ", "))

	rows, err := module.Translations().Form(ctx, record.ID, title)
	if err != nil {
		log.Fatalf("load form: %v", err)
	}
	printRows("Empty form", rows)

	incomplete := translatable.Submit(translatable.Row{Key: "en", Value: "Welcome"})
	_, err = module.Translations().Save(ctx, record.ID, title, incomplete)
	var missing *translatable.RequiredLanguageMissingError
	if errors.As(err, &missing) {
		fmt.Printf("Rejected: %s\n", missing.Error())
	} else if err != nil {
		log.Fatalf("save: %v", err)
	}

	sub, err := translatable.ParseSubmission([]byte(`[
		{"key": "en", "value": "Welcome"},
		{"key": "fr", "value": "Bienvenue"},
		{"key": "de", "value": "Willkommen"},
		{"key": "it", "value": ""}
	]`))
	if err != nil {
		log.Fatalf("parse submission: %v", err)
	}
	if _, err := module.Translations().Save(ctx, record.ID, title, sub); err != nil {
		log.Fatalf("save: %v", err)
	}

	rows, err = module.Translations().Form(ctx, record.ID, title)
	if err != nil {
		log.Fatalf("load form: %v", err)
	}
	printRows("Saved form", rows)

	summary, err := module.Translations().Summary(ctx, record.ID, title)
	if err != nil {
		log.Fatalf("summary: %v", err)
	}
	fmt.Printf("Summary: %s\n", summary)

	stored, err := module.Records().GetByID(ctx, record.ID)
	if err != nil {
		log.Fatalf("reload record: %v", err)
	}
	fmt.Printf("Rendered (es, falls back): %s\n", title.RenderLocale(stored, "es"))
}

// firstCodes returns at most n leading codes.
func firstCodes(codes []string, n int) []string {
	return codes[:min(max(n, 0), len(codes))]
}

func printRows(heading string, rows []translatable.Row) {
	fmt.Println(heading + ":")
	for _, row := range rows {
		fmt.Printf("  %-4s %q\n", strings.ToUpper(row.Key), row.Value)
	}
}

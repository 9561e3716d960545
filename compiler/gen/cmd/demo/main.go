// demo renders sample model classes with the core plugins.
// Run: go run ./compiler/gen/cmd/demo [plugins.yaml]
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dave/jennifer/jen"

	"github.com/syssam/membergen/compiler/gen"
	"github.com/syssam/membergen/compiler/model"
	"github.com/syssam/membergen/compiler/prime"
	"github.com/syssam/membergen/schema/column"
)

// defaultPlugins is used when no configuration file is given.
const defaultPlugins = `
equalsHashCode:
  useHashFromRoot: true
json:
validation:
  matchEmailAsPattern: true
toString:
  useStringFromRoot: true
  ignoreStaticFieldsInString: true
  appendHashInString: true
`

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))

	data := []byte(defaultPlugins)
	if len(os.Args) > 1 {
		b, err := os.ReadFile(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to read plugin configuration: %v\n", err)
			os.Exit(1)
		}
		data = b
	}
	configs, err := gen.LoadProperties(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load plugin configuration: %v\n", err)
		os.Exit(1)
	}

	// Create a temp directory for output
	outDir, err := os.MkdirTemp("", "membergen-demo-*")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create temp dir: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Output directory: %s\n", outDir)

	chain, err := gen.NewPlugins(configs, prime.NewSequence(), logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create plugins: %v\n", err)
		os.Exit(1)
	}
	runner, err := gen.NewRunner(chain, gen.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create runner: %v\n", err)
		os.Exit(1)
	}

	base := newClass("Audit", false, []column.Column{
		column.Long("created_at").Descriptor(),
		column.String("created_by").Length(64).Nullable().Descriptor(),
	})
	user := newClass("User", false, []column.Column{
		column.Long("id").Identity().Descriptor(),
		column.String("name").Length(50).Descriptor(),
		column.String("email").Raw("EMAIL").Length(120).Descriptor(),
		column.Bool("active").Descriptor(),
		column.Double("balance").Descriptor(),
		column.Bytes("avatar").Nullable().Descriptor(),
	})
	user.Super = base
	account := newClass("Account", true, []column.Column{
		column.Long("id").Identity().Descriptor(),
		column.String("iban").Length(34).Descriptor(),
		column.Double("limit").Descriptor(),
		column.Double("rate").Nullable().Descriptor(),
	})
	key := newClass("AccountKey", true, []column.Column{
		column.Long("account_id").Descriptor(),
		column.Short("branch").Descriptor(),
	})

	err = runner.Run(context.Background(),
		&gen.Job{Class: base},
		&gen.Job{Class: user},
		&gen.Job{Class: account},
		&gen.Job{Class: key, Kind: gen.PrimaryKeyClass},
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "generation failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("\nGenerated files:")
	for _, c := range []*model.Class{base, user, account, key} {
		src, err := c.Source()
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to render %s: %v\n", c.Name, err)
			os.Exit(1)
		}
		name := filepath.Join(outDir, strings.ToLower(c.Name)+".go")
		if err := os.WriteFile(name, src, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write %s: %v\n", name, err)
			os.Exit(1)
		}
		fmt.Printf("  %s (%d bytes)\n", filepath.Base(name), len(src))
	}

	fmt.Println("\n--- Sample: user.go ---")
	src, err := user.Source()
	if err == nil {
		fmt.Println(string(src))
	}
	fmt.Println("Done!")
}

// newClass returns a class with a field, a getter and, for mutable classes, a
// setter per column. Immutable classes get a constructor instead.
func newClass(name string, immutable bool, cols []column.Column) *model.Class {
	c := model.NewClass("models", name)
	c.Immutable = immutable
	var (
		params []*model.Param
		values = jen.Dict{}
	)
	for _, col := range cols {
		f, ok := c.AddColumn(col)
		if !ok {
			continue
		}
		c.AddGetter(f)
		if !immutable {
			c.AddSetter(f)
			continue
		}
		p := strings.ToLower(f.Name[:1]) + f.Name[1:]
		params = append(params, &model.Param{Name: p, Type: f.Type})
		values[jen.Id(f.Name)] = jen.Id(p)
	}
	if immutable {
		c.AddMember(&model.Member{
			Name:        "New" + name,
			Doc:         fmt.Sprintf("New%s returns a new %s.", name, name),
			Constructor: true,
			Params:      params,
			Body:        []jen.Code{jen.Return(jen.Op("&").Id(name).Values(values))},
		})
	}
	return c
}

// Package sink fills database tables with generated rows.
package sink

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/spf13/cast"
	"github.com/tutils/trand"
	"github.com/tutils/trand/generator"
)

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Column is one generated column. Min and Max are passed to the generator
// unparsed; for numeric columns they hold precision and scale.
type Column struct {
	Name string
	Kind generator.Kind
	Min  string
	Max  string
}

// ParseColumns parses a list of "name:kind[:min[:max]]" items separated by
// commas, e.g. "id:bigint:1:1000000,name:string:3:12,addr:inet".
func ParseColumns(s string) ([]Column, error) {
	var cols []Column
	seen := map[string]bool{}
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		parts := strings.Split(item, ":")
		if len(parts) < 2 || len(parts) > 4 {
			return nil, trand.NewDomainError("columns", "invalid column %q, want name:kind[:min[:max]]", item)
		}
		name := strings.TrimSpace(parts[0])
		if !identRe.MatchString(name) {
			return nil, trand.NewDomainError("columns", "invalid column name %q", name)
		}
		if seen[strings.ToLower(name)] {
			return nil, trand.NewDomainError("columns", "duplicate column %q", name)
		}
		seen[strings.ToLower(name)] = true

		kind, err := generator.ParseKind(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, err
		}
		c := Column{Name: name, Kind: kind}
		if len(parts) > 2 {
			c.Min = strings.TrimSpace(parts[2])
		}
		if len(parts) > 3 {
			c.Max = strings.TrimSpace(parts[3])
		}
		if kind == generator.KindNumeric && c.Min == "" {
			return nil, trand.NewDomainError("columns", "numeric column %q needs a precision", name)
		}
		if _, err := c.Request(0, 1); err != nil {
			return nil, err
		}
		cols = append(cols, c)
	}
	if len(cols) == 0 {
		return nil, trand.NewDomainError("columns", "no columns given")
	}
	return cols, nil
}

// Request builds the generator request for one value of c.
func (c Column) Request(seed, count uint32) (generator.Request, error) {
	req := generator.Request{Kind: c.Kind, Seed: seed, Count: count}
	if c.Kind != generator.KindNumeric {
		if c.Min != "" {
			req.Min = c.Min
		}
		if c.Max != "" {
			req.Max = c.Max
		}
		return req, nil
	}

	var err error
	if req.Precision, err = cast.ToIntE(c.Min); err != nil {
		return req, trand.NewDomainError("precision", "invalid value %q", c.Min)
	}
	if c.Max != "" {
		if req.Scale, err = cast.ToIntE(c.Max); err != nil {
			return req, trand.NewDomainError("scale", "invalid value %q", c.Max)
		}
	}
	return req, nil
}

// SQLType returns the column type for the given database driver.
func (c Column) SQLType(driver string) string {
	if driver == DriverPostgres {
		if c.Kind == generator.KindNumeric {
			req, err := c.Request(0, 1)
			if err == nil {
				return fmt.Sprintf("NUMERIC(%d,%d)", req.Precision, req.Scale)
			}
			return "NUMERIC"
		}
		return generator.SQLType[c.Kind]
	}

	switch c.Kind {
	case generator.KindInt, generator.KindBigInt:
		return "INTEGER"
	case generator.KindReal, generator.KindDouble:
		return "REAL"
	case generator.KindBytea:
		return "BLOB"
	case generator.KindNumeric:
		return "NUMERIC"
	default:
		return "TEXT"
	}
}

func quoteIdent(name string) string {
	return `"` + name + `"`
}

package seiargs

import (
	"fmt"
	"strings"

	"github.com/amterp/color"
)

var (
	greenBold  = color.New(color.FgGreen, color.Bold)
	cyan       = color.New(color.FgCyan)
	bold       = color.New(color.Bold)
	red        = color.New(color.FgRed)
	GreenBoldS = greenBold.SprintfFunc()
	CyanS      = cyan.SprintfFunc()
	BoldS      = bold.SprintfFunc()
	RedS       = red.SprintfFunc()
)

// Dump creates a diagnostic dump of a schema's structure and the argument
// vector about to be parsed. It renders no usage text; it is meant for
// debugging schema construction.
func Dump(s Schema, args []string) string {
	initializeColorFromEnv()

	var sb strings.Builder
	sb.WriteString(GreenBoldS("Seiargs Schema Dump") + "\n")
	sb.WriteString(strings.Repeat("=", 50) + "\n\n")

	sb.WriteString(GreenBoldS("Arguments to Parse:") + "\n")
	if len(args) == 0 {
		sb.WriteString("  " + CyanS("<none>") + "\n")
	}
	for i, arg := range args {
		sb.WriteString(fmt.Sprintf("  [%d]: %q\n", i, arg))
	}
	sb.WriteString("\n")

	s.dump(&sb, 0)
	return sb.String()
}

func (r *Record) dump(sb *strings.Builder, depth int) {
	indent := strings.Repeat("  ", depth)

	sb.WriteString(fmt.Sprintf("%s%s %s\n", indent, GreenBoldS("Record:"), BoldS(r.name)))
	if r.description != "" {
		sb.WriteString(fmt.Sprintf("%s  Description: %s\n", indent, BoldS(r.description)))
	}
	sb.WriteString(fmt.Sprintf("%s  Positional Fields: %d\n", indent, len(r.positional)))
	sb.WriteString(fmt.Sprintf("%s  Named Fields: %d\n", indent, len(r.named)))

	if len(r.positional) > 0 {
		sb.WriteString(fmt.Sprintf("%s  Positional (in order):\n", indent))
		for i, name := range r.positional {
			sb.WriteString(fmt.Sprintf("%s    [%d] %s\n", indent, i, fieldSummary(r.fields[name])))
		}
	}
	if len(r.named) > 0 {
		sb.WriteString(fmt.Sprintf("%s  Named:\n", indent))
		for _, name := range r.named {
			sb.WriteString(fmt.Sprintf("%s    %s\n", indent, fieldSummary(r.fields[name])))
		}
	}
}

func (s *Subcmds) dump(sb *strings.Builder, depth int) {
	indent := strings.Repeat("  ", depth)

	sb.WriteString(fmt.Sprintf("%s%s %s\n", indent, GreenBoldS("Subcommands:"), BoldS(s.name)))
	sb.WriteString(fmt.Sprintf("%s  Variants: %d\n", indent, len(s.order)))
	for _, name := range s.order {
		sb.WriteString(fmt.Sprintf("%s  - %s\n", indent, BoldS(name)))
		s.variants[name].dump(sb, depth+2)
	}
}

func (l *Leaf[T]) dump(sb *strings.Builder, depth int) {
	indent := strings.Repeat("  ", depth)

	sb.WriteString(fmt.Sprintf("%s%s %s type:%s", indent, GreenBoldS("Leaf:"), BoldS(l.name), l.kind))
	if l.def != nil {
		sb.WriteString(fmt.Sprintf(" default:%v", *l.def))
	} else {
		sb.WriteString(" " + CyanS("required"))
	}
	sb.WriteString("\n")
}

func fieldSummary(f fieldInfo) string {
	b := f.base()

	var parts []string
	if b.Short != "" {
		parts = append(parts, fmt.Sprintf("%s (-%s)", BoldS(b.Name), b.Short))
	} else {
		parts = append(parts, BoldS(b.Name))
	}
	parts = append(parts, "type:"+b.kind)
	if f.hasDefault() {
		parts = append(parts, "default:"+f.defaultString())
	} else {
		parts = append(parts, CyanS("required"))
	}
	if b.Usage != "" {
		parts = append(parts, fmt.Sprintf("usage:%q", b.Usage))
	}
	return strings.Join(parts, " ")
}

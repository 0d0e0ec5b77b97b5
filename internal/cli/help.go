package cli

import (
	"fmt"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
)

var (
	helpDescStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Italic(true)

	helpSectionStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(accentColor).
				MarginTop(1)

	helpFlagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00AA00")).
			Bold(true)

	helpArgStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00AAAA")).
			Bold(true)

	helpDefaultStyle = lipgloss.NewStyle().
				Foreground(mutedColor).
				Italic(true)
)

// StyledHelpPrinter renders kong help for the selected command with the
// package styles.
func StyledHelpPrinter(title, description string) kong.HelpPrinter {
	return func(_ kong.HelpOptions, ctx *kong.Context) error {
		node := ctx.Selected()
		if node == nil {
			node = ctx.Model.Node
		}

		var sb strings.Builder

		sb.WriteString(TitleStyle.Render(title))
		sb.WriteString("\n")

		desc := description
		if node != ctx.Model.Node && node.Help != "" {
			desc = node.Help
		}

		sb.WriteString(helpDescStyle.Render(desc))
		sb.WriteString("\n")

		sb.WriteString(helpSectionStyle.Render("Usage:"))
		sb.WriteString("\n  ")
		sb.WriteString(usage(ctx, node))
		sb.WriteString("\n")

		if len(node.Children) > 0 {
			sb.WriteString(helpSectionStyle.Render("Commands:"))
			sb.WriteString("\n")

			for _, child := range node.Children {
				if child.Hidden {
					continue
				}

				fmt.Fprintf(&sb, "  %s  %s\n", helpArgStyle.Render(fmt.Sprintf("%-10s", child.Name)), child.Help)
			}
		}

		if len(node.Positional) > 0 {
			sb.WriteString(helpSectionStyle.Render("Arguments:"))
			sb.WriteString("\n")

			for _, arg := range node.Positional {
				fmt.Fprintf(&sb, "  %s  %s\n", helpArgStyle.Render(arg.Summary()), arg.Help)
			}
		}

		sb.WriteString(helpSectionStyle.Render("Flags:"))
		sb.WriteString("\n")

		for _, f := range flags(node) {
			sb.WriteString("  ")
			sb.WriteString(helpFlagStyle.Render(f.flags))

			if f.help != "" {
				sb.WriteString("  ")
				sb.WriteString(f.help)
			}

			if f.defaultVal != "" {
				sb.WriteString(" ")
				sb.WriteString(helpDefaultStyle.Render("(default: " + f.defaultVal + ")"))
			}

			sb.WriteString("\n")
		}

		sb.WriteString("\n")
		fmt.Fprint(ctx.Stdout, sb.String())

		return nil
	}
}

func usage(ctx *kong.Context, node *kong.Node) string {
	if node == ctx.Model.Node {
		return ctx.Model.Name + " <command> [flags]"
	}

	return ctx.Model.Name + " " + node.Path() + " [flags]"
}

type flag struct {
	flags      string
	help       string
	defaultVal string
}

// flags lists the node's flags and those inherited from its parents.
func flags(node *kong.Node) []flag {
	out := []flag{{flags: "-h, --help", help: "Show context-sensitive help."}}

	for n := node; n != nil; n = n.Parent {
		for _, f := range n.Flags {
			if f.Name == "help" || f.Hidden {
				continue
			}

			name := "--" + f.Name
			if f.Short != 0 {
				name = fmt.Sprintf("-%c, --%s", f.Short, f.Name)
			}

			if !f.IsBool() {
				placeholder := f.PlaceHolder
				if placeholder == "" {
					placeholder = f.Name
				}

				name += "=" + strings.ToUpper(placeholder)
			}

			out = append(out, flag{flags: name, help: f.Help, defaultVal: f.Default})
		}
	}

	return out
}

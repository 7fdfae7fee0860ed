package formatter

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/fatih/color"
	"github.com/samber/lo"

	"github.com/gnoswap-labs/minlog/internal/cube"
	"github.com/gnoswap-labs/minlog/internal/printer"
	"github.com/gnoswap-labs/minlog/minimize"
)

var (
	errorStyle   = color.New(color.FgRed, color.Bold)
	sourceStyle  = color.New(color.FgCyan, color.Bold)
	lineStyle    = color.New(color.FgHiBlue, color.Bold)
	headerStyle  = color.New(color.FgYellow, color.Bold)
	resultStyle  = color.New(color.FgGreen, color.Bold)
	messageStyle = color.New(color.FgRed, color.Bold)
	noStyle      = color.New(color.FgWhite)
)

// resultFormatter supplies the template for one kind of result.
type resultFormatter interface {
	ResultTemplate() string
}

func getResultFormatter(result *minimize.Result) resultFormatter {
	if result.Failed() {
		return &FailedResultFormatter{}
	}
	return &ReducedResultFormatter{}
}

// GenerateFormattedResult renders results for the terminal. With verbose set
// the selected implicants and the verification state are listed too.
func GenerateFormattedResult(results []*minimize.Result, verbose bool) string {
	var builder strings.Builder
	for _, result := range results {
		builder.WriteString(buildResult(result, verbose, getResultFormatter(result)))
	}
	return builder.String()
}

type ResultData struct {
	Source        string
	Equation      string
	Form          string
	VariableCount int
	Expression    string
	Essential     []string
	Selected      []string
	PrimeCount    int
	Verified      bool
	Verbose       bool
	Error         string
}

func patterns(cubes []cube.Cube, width int) []string {
	return lo.Map(cubes, func(c cube.Cube, _ int) string {
		return c.Pattern(width)
	})
}

func buildResult(result *minimize.Result, verbose bool, formatter resultFormatter) string {
	data := ResultData{
		Source:        result.Source,
		Equation:      result.Canonical,
		Form:          result.Form,
		VariableCount: result.VariableCount,
		Expression:    result.Expression,
		Essential:     patterns(result.Essential, result.VariableCount),
		Selected:      patterns(result.Selected, result.VariableCount),
		PrimeCount:    len(result.PrimeImplicants),
		Verified:      result.Verified,
		Verbose:       verbose,
		Error:         result.Error,
	}

	funcMap := template.FuncMap{
		"source":     source,
		"header":     header,
		"expression": expression,
		"detail":     detail,
		"failure":    failure,
		"join":       strings.Join,
	}

	tmpl := template.Must(template.New("result").Funcs(funcMap).Parse(formatter.ResultTemplate()))

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Sprintf("Error formatting result: %v", err)
	}
	return buf.String()
}

// utils functions used in the text templates

func source(src, equation string) string {
	if src == "" {
		return ""
	}
	return lineStyle.Sprint("--> ") + sourceStyle.Sprint(src) + noStyle.Sprintf(" %s", equation) + "\n"
}

func header() string {
	return headerStyle.Sprint(printer.Header)
}

func expression(expr string) string {
	return resultStyle.Sprint(expr)
}

func detail(label, value string) string {
	return lineStyle.Sprint("  = ") + noStyle.Sprintf("%s: %s", label, value)
}

func failure(message string) string {
	return errorStyle.Sprint("error: ") + messageStyle.Sprint(message)
}

package formatter

type ReducedResultFormatter struct{}

func (f *ReducedResultFormatter) ResultTemplate() string {
	return `{{source .Source .Equation -}}
{{header}}
{{expression .Expression}}
{{- if .Verbose }}
{{detail "form" .Form}}
{{detail "prime implicants" (printf "%d" .PrimeCount)}}
{{detail "essential" (join .Essential " ")}}
{{detail "selected" (join .Selected " ")}}
{{- if .Verified }}
{{detail "verified" "yes"}}
{{- end }}
{{- end }}
`
}

type FailedResultFormatter struct{}

func (f *FailedResultFormatter) ResultTemplate() string {
	return `{{source .Source .Equation -}}
{{failure .Error}}
`
}

package cmd

type Config struct {
	HTTPPort       string
	DefaultCountry string
	ReportSchedule string
}

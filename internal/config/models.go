package config

// InputConfig represents the input dataset locations
type InputConfig struct {
	InboxPath      string
	OrdersPath     string
	ShipmentsPath  string
	InvoicesPath   string
	CompliancePath string
}

// OutputConfig represents where and how results are emitted
type OutputConfig struct {
	Path            string
	Console         bool
	MaxPreviewBytes int
}

// ArchiveConfig represents the optional result archive
type ArchiveConfig struct {
	Enabled    bool
	Type       string
	SQLitePath string
	MySQLDSN   string
}

// GetInput returns the input configuration
func (c *Config) GetInput() InputConfig {
	return InputConfig{
		InboxPath:      c.GetString("input.inbox_path"),
		OrdersPath:     c.GetString("input.orders_path"),
		ShipmentsPath:  c.GetString("input.shipments_path"),
		InvoicesPath:   c.GetString("input.invoices_path"),
		CompliancePath: c.GetString("input.compliance_path"),
	}
}

// GetOutput returns the output configuration
func (c *Config) GetOutput() OutputConfig {
	return OutputConfig{
		Path:            c.GetString("output.path"),
		Console:         c.GetBool("output.console"),
		MaxPreviewBytes: c.GetInt("output.max_preview_bytes"),
	}
}

// GetArchive returns the archive configuration
func (c *Config) GetArchive() ArchiveConfig {
	return ArchiveConfig{
		Enabled:    c.GetBool("archive.enabled"),
		Type:       c.GetString("archive.type"),
		SQLitePath: c.GetString("archive.sqlite_path"),
		MySQLDSN:   c.GetString("archive.mysql_dsn"),
	}
}

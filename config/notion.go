package config

// NotionConfig contains the hosted database credentials and target.
type NotionConfig struct {
	// Token is the Notion integration token. Required.
	Token string `env:"NOTION_TOKEN"`

	// DatabaseID is the id of the todo database to sync. Required.
	DatabaseID string `env:"DATABASE_ID"`
}

// Validate checks required credentials are present.
func (c *NotionConfig) Validate() error {
	if err := requireNonEmpty(c.Token, "notion token"); err != nil {
		return err
	}
	return requireNonEmpty(c.DatabaseID, "database id")
}

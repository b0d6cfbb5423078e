package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if len(c.Auth.DemoUsers()) == 0 {
		return fmt.Errorf("auth.demo_users must list at least one login email")
	}

	if err := c.CRM.validate(); err != nil {
		return fmt.Errorf("crm: %w", err)
	}

	return nil
}

func (c *CRMConfig) validate() error {
	if c.HighValueThreshold < 0 {
		return fmt.Errorf("high_value_threshold must be >= 0 (got %v)", c.HighValueThreshold)
	}
	if c.RecentWindowDays <= 0 {
		return fmt.Errorf("recent_window_days must be > 0 (got %d)", c.RecentWindowDays)
	}
	switch c.DeactivationOrderPolicy {
	case "retain", "purge":
	default:
		return fmt.Errorf("deactivation_order_policy must be \"retain\" or \"purge\" (got %q)", c.DeactivationOrderPolicy)
	}
	if c.MaxCampaignsPerActor <= 0 {
		return fmt.Errorf("max_campaigns_per_actor must be > 0 (got %d)", c.MaxCampaignsPerActor)
	}
	return nil
}

package config

import "fmt"

// Keycloak configures the admin client used for user registration.
type Keycloak struct {
	URL      string `koanf:"url"`
	Realm    string `koanf:"realm"`
	ClientID string `koanf:"clientid"`
	Secret   string `koanf:"secret"`
}

func (c *Keycloak) Validate() error {
	if c.URL == "" {
		return fmt.Errorf("keycloak URL cannot be empty")
	}
	if c.Realm == "" {
		return fmt.Errorf("keycloak realm cannot be empty")
	}
	if c.ClientID == "" {
		return fmt.Errorf("keycloak client ID cannot be empty")
	}
	if c.Secret == "" {
		return fmt.Errorf("keycloak client secret cannot be empty")
	}
	return nil
}

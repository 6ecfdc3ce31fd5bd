package recipeClientFactory

import (
	"github.com/remirami/RecipeBank/internal/credstore"
	"github.com/remirami/RecipeBank/internal/services/recipeclient"
	"github.com/remirami/RecipeBank/internal/session"
	jwtToken "github.com/remirami/RecipeBank/pkg/auth/tokenAuth/jwt"
	"github.com/remirami/RecipeBank/pkg/config/env"
)

// Factory wires the client application: credential store, session
// supervisor and API client, in dependency order.
type Factory struct {
	Config  env.Config
	Store   *credstore.FileStore
	Session *session.Supervisor
	Client  *recipeclient.Client
}

// New creates a pointer to a Factory
func New(config env.Config) *Factory {
	store := credstore.New(config.CredentialsFile)
	supervisor := session.New(store, jwtToken.NewDecoder(), session.Options{
		CheckInterval:  config.ExpiryCheckInterval,
		NoticeDuration: config.NoticeDuration,
	})
	client := recipeclient.New(config.APIBaseURL,
		recipeclient.WithTokenSource(supervisor),
		recipeclient.WithTimeout(config.HTTPTimeout),
	)

	return &Factory{
		Config:  config,
		Store:   store,
		Session: supervisor,
		Client:  client,
	}
}

package auth

import (
	"context"

	"golang.org/x/oauth2"
	goauth2 "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

// AuthCodeURL builds the Google consent page URL for the OAuth flow,
// with state echoed back on the callback.
func (s *Service) AuthCodeURL(state string) string {
	return s.config.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

// Exchange swaps the authorization code from the OAuth callback for a token.
func (s *Service) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	return s.config.Exchange(ctx, code)
}

// FetchUser exchanges the oauth2 token for the Google account it belongs to.
func (s *Service) FetchUser(token *oauth2.Token) (*goauth2.Userinfo, error) {
	ctx := context.Background()
	service, err := goauth2.NewService(ctx, option.WithTokenSource(s.config.TokenSource(ctx, token)))
	if err != nil {
		return nil, err
	}

	user, err := service.Userinfo.Get().Do()
	if err != nil {
		return nil, err
	}

	return user, nil
}

// Package cognito implementa ports.IdentityProvider y ports.TokenSource sobre un
// user pool de AWS Cognito con cliente público (flujo USER_PASSWORD_AUTH).
package cognito

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	cip "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"

	"github.com/rutujaMandapmalvi3/Laika/internal/application/ports"
	"github.com/rutujaMandapmalvi3/Laika/internal/domain"
	"github.com/rutujaMandapmalvi3/Laika/pkg/jwt"
	"github.com/rutujaMandapmalvi3/Laika/pkg/logger"
)

var (
	_ ports.IdentityProvider = (*Client)(nil)
	_ ports.TokenSource      = (*Client)(nil)
)

// API subconjunto del cliente de Cognito que usa el adaptador (permite fakes en tests).
type API interface {
	SignUp(ctx context.Context, in *cip.SignUpInput, optFns ...func(*cip.Options)) (*cip.SignUpOutput, error)
	ConfirmSignUp(ctx context.Context, in *cip.ConfirmSignUpInput, optFns ...func(*cip.Options)) (*cip.ConfirmSignUpOutput, error)
	ResendConfirmationCode(ctx context.Context, in *cip.ResendConfirmationCodeInput, optFns ...func(*cip.Options)) (*cip.ResendConfirmationCodeOutput, error)
	InitiateAuth(ctx context.Context, in *cip.InitiateAuthInput, optFns ...func(*cip.Options)) (*cip.InitiateAuthOutput, error)
	GlobalSignOut(ctx context.Context, in *cip.GlobalSignOutInput, optFns ...func(*cip.Options)) (*cip.GlobalSignOutOutput, error)
	GetUser(ctx context.Context, in *cip.GetUserInput, optFns ...func(*cip.Options)) (*cip.GetUserOutput, error)
}

// Client adaptador de Cognito. Guarda en memoria los tokens de la última sesión
// y, si se configura un SessionCache, los persiste entre procesos (CLI).
type Client struct {
	api      API
	clientID string
	cache    SessionCache
	log      *logger.Logger
	now      func() time.Time

	mu      sync.Mutex
	session *ports.AuthResult
}

// Option configura el Client.
type Option func(*Client)

// WithSessionCache persiste la sesión (p. ej. en ~/.laika/session.json).
func WithSessionCache(c SessionCache) Option {
	return func(cl *Client) { cl.cache = c }
}

// WithClock fija el reloj usado para comprobar la expiración del ID token.
func WithClock(now func() time.Time) Option {
	return func(cl *Client) { cl.now = now }
}

// New crea el adaptador. Si hay cache, intenta recuperar la sesión guardada.
func New(api API, clientID string, log *logger.Logger, opts ...Option) *Client {
	if log == nil {
		log = logger.Nop()
	}
	c := &Client{
		api:      api,
		clientID: clientID,
		log:      log.Component("cognito"),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.cache != nil {
		s, err := c.cache.Load()
		if err != nil {
			c.log.Warn().Err(err).Msg("no se pudo leer la sesión guardada")
		}
		c.session = s
	}
	return c
}

// NewFromConfig crea el adaptador a partir de la configuración de AWS ya cargada.
func NewFromConfig(cfg aws.Config, clientID string, log *logger.Logger, opts ...Option) *Client {
	return New(cip.NewFromConfig(cfg), clientID, log, opts...)
}

// SignUp registra al usuario con los atributos estándar del pool.
func (c *Client) SignUp(ctx context.Context, in ports.SignUpInput) error {
	_, err := c.api.SignUp(ctx, &cip.SignUpInput{
		ClientId: aws.String(c.clientID),
		Username: aws.String(in.Username),
		Password: aws.String(in.Password),
		UserAttributes: []types.AttributeType{
			attr("email", in.Email),
			attr("given_name", in.FirstName),
			attr("family_name", in.LastName),
			attr("phone_number", in.PhoneNumber),
			attr("preferred_username", in.Username),
		},
	})
	if err != nil {
		return classify(domain.KindRegistration, err)
	}
	return nil
}

// ConfirmSignUp confirma el registro con el código recibido por email.
func (c *Client) ConfirmSignUp(ctx context.Context, username, code string) error {
	_, err := c.api.ConfirmSignUp(ctx, &cip.ConfirmSignUpInput{
		ClientId:           aws.String(c.clientID),
		Username:           aws.String(username),
		ConfirmationCode:   aws.String(code),
		ForceAliasCreation: true,
	})
	if err != nil {
		return classify(domain.KindRemote, err)
	}
	return nil
}

// ResendConfirmationCode reenvía el código de verificación.
func (c *Client) ResendConfirmationCode(ctx context.Context, username string) error {
	_, err := c.api.ResendConfirmationCode(ctx, &cip.ResendConfirmationCodeInput{
		ClientId: aws.String(c.clientID),
		Username: aws.String(username),
	})
	if err != nil {
		return classify(domain.KindRemote, err)
	}
	return nil
}

// SignIn autentica con usuario y contraseña y deja la sesión activa.
func (c *Client) SignIn(ctx context.Context, username, password string) (*ports.AuthResult, error) {
	out, err := c.api.InitiateAuth(ctx, &cip.InitiateAuthInput{
		AuthFlow: types.AuthFlowTypeUserPasswordAuth,
		ClientId: aws.String(c.clientID),
		AuthParameters: map[string]string{
			"USERNAME": username,
			"PASSWORD": password,
		},
	})
	if err != nil {
		return nil, classify(domain.KindAuthentication, err)
	}
	if out.AuthenticationResult == nil {
		// NEW_PASSWORD_REQUIRED, MFA...: la app no implementa desafíos.
		return nil, domain.NewAuthentication(fmt.Sprintf("unsupported challenge: %s", out.ChallengeName))
	}

	r := out.AuthenticationResult
	res := &ports.AuthResult{
		IDToken:      aws.ToString(r.IdToken),
		AccessToken:  aws.ToString(r.AccessToken),
		RefreshToken: aws.ToString(r.RefreshToken),
		ExpiresAt:    c.now().Add(time.Duration(r.ExpiresIn) * time.Second),
	}
	c.setSession(res)
	c.log.Debug().Str("username", username).Msg("sesión iniciada")
	return res, nil
}

// SignOut invalida los tokens en Cognito y olvida la sesión local.
// Sin sesión activa no hace nada.
func (c *Client) SignOut(ctx context.Context) error {
	c.mu.Lock()
	s := c.session
	c.mu.Unlock()
	if s == nil {
		return nil
	}
	if _, err := c.api.GlobalSignOut(ctx, &cip.GlobalSignOutInput{AccessToken: aws.String(s.AccessToken)}); err != nil {
		// La sesión local se cierra igual; el token remoto expira solo.
		c.log.Warn().Err(err).Msg("global sign out falló")
	}
	c.setSession(nil)
	return nil
}

// GetCurrentUser devuelve el usuario de la sesión activa y sus atributos.
func (c *Client) GetCurrentUser(ctx context.Context) (*ports.CurrentUser, error) {
	s, err := c.activeSession()
	if err != nil {
		return nil, err
	}
	out, err := c.api.GetUser(ctx, &cip.GetUserInput{AccessToken: aws.String(s.AccessToken)})
	if err != nil {
		return nil, classify(domain.KindRemote, err)
	}
	attrs := make(map[string]string, len(out.UserAttributes))
	for _, a := range out.UserAttributes {
		attrs[aws.ToString(a.Name)] = aws.ToString(a.Value)
	}
	return &ports.CurrentUser{Username: aws.ToString(out.Username), Attributes: attrs}, nil
}

// IDToken devuelve el ID token vigente para llamar a la API de perfiles.
func (c *Client) IDToken(_ context.Context) (string, error) {
	s, err := c.activeSession()
	if err != nil {
		return "", err
	}
	return s.IDToken, nil
}

func (c *Client) activeSession() (*ports.AuthResult, error) {
	c.mu.Lock()
	s := c.session
	c.mu.Unlock()
	if s == nil || s.IDToken == "" {
		return nil, domain.ErrNoSession
	}
	claims, err := jwt.ParseUnverified(s.IDToken)
	if err != nil {
		return nil, domain.Wrap(domain.KindAuthentication, "ID token inválido", err)
	}
	if claims.Expired(c.now()) {
		return nil, domain.ErrSessionExpired
	}
	return s, nil
}

func (c *Client) setSession(s *ports.AuthResult) {
	c.mu.Lock()
	c.session = s
	c.mu.Unlock()
	if c.cache == nil {
		return
	}
	var err error
	if s == nil {
		err = c.cache.Clear()
	} else {
		err = c.cache.Save(s)
	}
	if err != nil {
		c.log.Warn().Err(err).Msg("no se pudo persistir la sesión")
	}
}

func attr(name, value string) types.AttributeType {
	return types.AttributeType{Name: aws.String(name), Value: aws.String(value)}
}

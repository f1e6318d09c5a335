// Package apiclient implementa repository.ProfileStore contra la API HTTP de perfiles
// (API Gateway en producción, cmd/api en local), firmando cada llamada con el ID token.
package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/go-querystring/query"
	"github.com/valyala/fasthttp"

	"github.com/rutujaMandapmalvi3/Laika/internal/application/dto"
	"github.com/rutujaMandapmalvi3/Laika/internal/application/ports"
	"github.com/rutujaMandapmalvi3/Laika/internal/domain"
	"github.com/rutujaMandapmalvi3/Laika/internal/domain/entity"
	"github.com/rutujaMandapmalvi3/Laika/internal/domain/repository"
	"github.com/rutujaMandapmalvi3/Laika/pkg/logger"
)

var _ repository.ProfileStore = (*Client)(nil)

// DefaultErrorMessage texto cuando la respuesta de error no trae message.
const DefaultErrorMessage = "API request failed"

// Client cliente de la API de perfiles.
type Client struct {
	baseURL string
	http    *fasthttp.Client
	tokens  ports.TokenSource
	log     *logger.Logger
}

// Option configura el Client.
type Option func(*Client)

// WithHTTPClient reemplaza el cliente fasthttp (tests con listener en memoria).
func WithHTTPClient(hc *fasthttp.Client) Option {
	return func(c *Client) { c.http = hc }
}

// New crea el cliente. baseURL sin barra final, p. ej. https://xxxx.execute-api.us-west-2.amazonaws.com.
func New(baseURL string, tokens ports.TokenSource, log *logger.Logger, opts ...Option) *Client {
	if log == nil {
		log = logger.Nop()
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &fasthttp.Client{Name: "laika-apiclient"},
		tokens:  tokens,
		log:     log.Component("apiclient"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetUserProfile GET /users/profile. La API resuelve el usuario por el token; userID
// solo se usa en logs.
func (c *Client) GetUserProfile(ctx context.Context, userID string) (*entity.UserProfile, error) {
	var out entity.UserProfile
	if err := c.do(ctx, fasthttp.MethodGet, "/users/profile", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateUserProfile POST /users/profile.
func (c *Client) CreateUserProfile(ctx context.Context, profile *entity.UserProfile) (*entity.UserProfile, error) {
	var out entity.UserProfile
	if err := c.do(ctx, fasthttp.MethodPost, "/users/profile", profile, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateUserProfile PUT /users/profile con solo los campos del patch.
func (c *Client) UpdateUserProfile(ctx context.Context, _ string, patch entity.UserProfilePatch) (*entity.UserProfile, error) {
	var out entity.UserProfile
	if err := c.do(ctx, fasthttp.MethodPut, "/users/profile", patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetVetProfile GET /users/vet/{userId}.
func (c *Client) GetVetProfile(ctx context.Context, userID string) (*entity.VetProfile, error) {
	var out entity.VetProfile
	if err := c.do(ctx, fasthttp.MethodGet, "/users/vet/"+url.PathEscape(userID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateVetProfile POST /users/vet.
func (c *Client) CreateVetProfile(ctx context.Context, vet *entity.VetProfile) (*entity.VetProfile, error) {
	var out entity.VetProfile
	if err := c.do(ctx, fasthttp.MethodPost, "/users/vet", vet, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetShelterProfile GET /users/shelter/{userId}.
func (c *Client) GetShelterProfile(ctx context.Context, userID string) (*entity.ShelterProfile, error) {
	var out entity.ShelterProfile
	if err := c.do(ctx, fasthttp.MethodGet, "/users/shelter/"+url.PathEscape(userID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateShelterProfile POST /users/shelter.
func (c *Client) CreateShelterProfile(ctx context.Context, shelter *entity.ShelterProfile) (*entity.ShelterProfile, error) {
	var out entity.ShelterProfile
	if err := c.do(ctx, fasthttp.MethodPost, "/users/shelter", shelter, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetPetsByOwner GET /pets?ownerId=.
func (c *Client) GetPetsByOwner(ctx context.Context, ownerID string) ([]*entity.Pet, error) {
	v, err := query.Values(dto.PetsQuery{OwnerID: ownerID})
	if err != nil {
		return nil, fmt.Errorf("query pets: %w", err)
	}
	pets := make([]*entity.Pet, 0)
	if err := c.do(ctx, fasthttp.MethodGet, "/pets?"+v.Encode(), nil, &pets); err != nil {
		return nil, err
	}
	return pets, nil
}

// CreatePet POST /pets.
func (c *Client) CreatePet(ctx context.Context, pet *entity.Pet) (*entity.Pet, error) {
	var out entity.Pet
	if err := c.do(ctx, fasthttp.MethodPost, "/pets", pet, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// do hace la llamada autenticada. Sin sesión (o sesión vencida) falla antes de tocar la red.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	token, err := c.tokens.IDToken(ctx)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.baseURL + path)
	req.Header.SetMethod(method)
	req.Header.SetContentType("application/json")
	req.Header.Set(fasthttp.HeaderAuthorization, "Bearer "+token)
	if body != nil && method != fasthttp.MethodGet {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("codificar cuerpo: %w", err)
		}
		req.SetBodyRaw(b)
	}

	if deadline, ok := ctx.Deadline(); ok {
		err = c.http.DoDeadline(req, resp, deadline)
	} else {
		err = c.http.Do(req, resp)
	}
	if err != nil {
		return domain.Wrap(domain.KindRemote, method+" "+path, err)
	}

	status := resp.StatusCode()
	c.log.Debug().Str("method", method).Str("path", path).Int("status", status).Msg("api")
	if status < 200 || status > 299 {
		return statusError(status, resp.Body())
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return domain.Wrap(domain.KindRemote, "respuesta inválida", err)
	}
	return nil
}

// statusError clasifica una respuesta no 2xx. El texto del error es el message del
// cuerpo, o DefaultErrorMessage si no hay.
func statusError(status int, body []byte) error {
	var e dto.ErrorResponse
	_ = json.Unmarshal(body, &e)
	msg := e.Message
	if msg == "" {
		msg = DefaultErrorMessage
	}

	kind := domain.KindRemote
	switch status {
	case fasthttp.StatusNotFound:
		kind = domain.KindNotFound
	case fasthttp.StatusUnauthorized, fasthttp.StatusForbidden:
		kind = domain.KindAuthentication
	case fasthttp.StatusConflict:
		kind = domain.KindConflict
	}
	return &domain.Error{Kind: kind, Message: msg}
}

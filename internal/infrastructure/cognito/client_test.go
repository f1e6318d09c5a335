package cognito_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	cip "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rutujaMandapmalvi3/Laika/internal/application/ports"
	"github.com/rutujaMandapmalvi3/Laika/internal/domain"
	"github.com/rutujaMandapmalvi3/Laika/internal/infrastructure/cognito"
	"github.com/rutujaMandapmalvi3/Laika/pkg/jwt"
)

type fakeAPI struct {
	signUpIn   *cip.SignUpInput
	signUpErr  error
	confirmIn  *cip.ConfirmSignUpInput
	confirmErr error
	authIn     *cip.InitiateAuthInput
	authOut    *cip.InitiateAuthOutput
	authErr    error
	signOuts   int
	getUserOut *cip.GetUserOutput
	getUserErr error
}

func (f *fakeAPI) SignUp(_ context.Context, in *cip.SignUpInput, _ ...func(*cip.Options)) (*cip.SignUpOutput, error) {
	f.signUpIn = in
	return &cip.SignUpOutput{}, f.signUpErr
}

func (f *fakeAPI) ConfirmSignUp(_ context.Context, in *cip.ConfirmSignUpInput, _ ...func(*cip.Options)) (*cip.ConfirmSignUpOutput, error) {
	f.confirmIn = in
	if f.confirmErr != nil {
		return nil, f.confirmErr
	}
	return &cip.ConfirmSignUpOutput{}, nil
}

func (f *fakeAPI) ResendConfirmationCode(context.Context, *cip.ResendConfirmationCodeInput, ...func(*cip.Options)) (*cip.ResendConfirmationCodeOutput, error) {
	return &cip.ResendConfirmationCodeOutput{}, nil
}

func (f *fakeAPI) InitiateAuth(_ context.Context, in *cip.InitiateAuthInput, _ ...func(*cip.Options)) (*cip.InitiateAuthOutput, error) {
	f.authIn = in
	return f.authOut, f.authErr
}

func (f *fakeAPI) GlobalSignOut(context.Context, *cip.GlobalSignOutInput, ...func(*cip.Options)) (*cip.GlobalSignOutOutput, error) {
	f.signOuts++
	return &cip.GlobalSignOutOutput{}, nil
}

func (f *fakeAPI) GetUser(context.Context, *cip.GetUserInput, ...func(*cip.Options)) (*cip.GetUserOutput, error) {
	return f.getUserOut, f.getUserErr
}

func authOK(t *testing.T, expMinutes int) *cip.InitiateAuthOutput {
	t.Helper()
	tok, err := jwt.Generate("s", "sub-1", "ana@example.com", "ana", "test", expMinutes)
	require.NoError(t, err)
	return &cip.InitiateAuthOutput{AuthenticationResult: &types.AuthenticationResultType{
		IdToken:      aws.String(tok),
		AccessToken:  aws.String("access"),
		RefreshToken: aws.String("refresh"),
		ExpiresIn:    3600,
	}}
}

func TestSignUp_EnviaAtributos(t *testing.T) {
	api := &fakeAPI{}
	c := cognito.New(api, "client-1", nil)

	err := c.SignUp(context.Background(), ports.SignUpInput{
		Username: "ana", Password: "secret123", Email: "ana@example.com",
		FirstName: "Ana", LastName: "Ruiz", PhoneNumber: "+15035550100",
	})
	require.NoError(t, err)

	got := map[string]string{}
	for _, a := range api.signUpIn.UserAttributes {
		got[aws.ToString(a.Name)] = aws.ToString(a.Value)
	}
	assert.Equal(t, "client-1", aws.ToString(api.signUpIn.ClientId))
	assert.Equal(t, "+15035550100", got["phone_number"])
	assert.Equal(t, "ana", got["preferred_username"])
	assert.Equal(t, "Ruiz", got["family_name"])
}

func TestSignUp_UsuarioExistenteEsRegistro(t *testing.T) {
	api := &fakeAPI{signUpErr: &types.UsernameExistsException{Message: aws.String("User already exists")}}
	err := cognito.New(api, "c", nil).SignUp(context.Background(), ports.SignUpInput{Username: "ana"})

	assert.Equal(t, domain.KindRegistration, domain.KindOf(err))
	assert.Equal(t, "User already exists", err.Error())
}

func TestSignIn_CredencialesIncorrectas(t *testing.T) {
	api := &fakeAPI{authErr: &types.NotAuthorizedException{Message: aws.String("Incorrect username or password.")}}
	_, err := cognito.New(api, "c", nil).SignIn(context.Background(), "ana", "bad")

	assert.True(t, domain.IsAuthentication(err))
	assert.Equal(t, "Incorrect username or password.", err.Error())
}

func TestSignIn_GuardaSesion(t *testing.T) {
	api := &fakeAPI{authOut: authOK(t, 60)}
	c := cognito.New(api, "c", nil)

	res, err := c.SignIn(context.Background(), "ana", "secret123")
	require.NoError(t, err)
	assert.Equal(t, types.AuthFlowTypeUserPasswordAuth, api.authIn.AuthFlow)
	assert.Equal(t, "ana", api.authIn.AuthParameters["USERNAME"])

	tok, err := c.IDToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, res.IDToken, tok)
}

func TestSignIn_DesafioNoSoportado(t *testing.T) {
	api := &fakeAPI{authOut: &cip.InitiateAuthOutput{ChallengeName: types.ChallengeNameTypeNewPasswordRequired}}
	_, err := cognito.New(api, "c", nil).SignIn(context.Background(), "ana", "secret123")
	assert.True(t, domain.IsAuthentication(err))
}

func TestIDToken_SinSesion(t *testing.T) {
	_, err := cognito.New(&fakeAPI{}, "c", nil).IDToken(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoSession)
	assert.Equal(t, "No user logged in", err.Error())
}

func TestIDToken_SesionExpirada(t *testing.T) {
	api := &fakeAPI{authOut: authOK(t, 60)}
	later := time.Now().Add(2 * time.Hour)
	c := cognito.New(api, "c", nil, cognito.WithClock(func() time.Time { return later }))

	_, err := c.SignIn(context.Background(), "ana", "secret123")
	require.NoError(t, err)

	_, err = c.IDToken(context.Background())
	assert.True(t, domain.IsAuthentication(err))
	assert.Equal(t, "Session expired", err.Error())
}

func TestSignOut_CierraSesion(t *testing.T) {
	api := &fakeAPI{authOut: authOK(t, 60)}
	c := cognito.New(api, "c", nil)

	require.NoError(t, c.SignOut(context.Background()), "sin sesión no hace nada")
	assert.Zero(t, api.signOuts)

	_, err := c.SignIn(context.Background(), "ana", "secret123")
	require.NoError(t, err)
	require.NoError(t, c.SignOut(context.Background()))
	assert.Equal(t, 1, api.signOuts)

	_, err = c.IDToken(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoSession)
}

func TestGetCurrentUser_Atributos(t *testing.T) {
	api := &fakeAPI{
		authOut: authOK(t, 60),
		getUserOut: &cip.GetUserOutput{
			Username: aws.String("ana"),
			UserAttributes: []types.AttributeType{
				{Name: aws.String("email"), Value: aws.String("ana@example.com")},
				{Name: aws.String("given_name"), Value: aws.String("Ana")},
			},
		},
	}
	c := cognito.New(api, "c", nil)
	_, err := c.GetCurrentUser(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoSession)

	_, err = c.SignIn(context.Background(), "ana", "secret123")
	require.NoError(t, err)

	u, err := c.GetCurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ana", u.Username)
	assert.Equal(t, "Ana", u.Attributes["given_name"])
}

func TestConfirm_EnviaCodigoYAlias(t *testing.T) {
	api := &fakeAPI{}
	require.NoError(t, cognito.New(api, "client-1", nil).ConfirmSignUp(context.Background(), "ana", "123456"))

	assert.Equal(t, "client-1", aws.ToString(api.confirmIn.ClientId))
	assert.Equal(t, "ana", aws.ToString(api.confirmIn.Username))
	assert.Equal(t, "123456", aws.ToString(api.confirmIn.ConfirmationCode))
	assert.True(t, api.confirmIn.ForceAliasCreation)
}

func TestConfirm_MensajeLiteral(t *testing.T) {
	api := &fakeAPI{confirmErr: &types.CodeMismatchException{Message: aws.String("Invalid verification code provided, please try again.")}}
	err := cognito.New(api, "c", nil).ConfirmSignUp(context.Background(), "ana", "000000")
	assert.Equal(t, domain.KindRemote, domain.KindOf(err))
	assert.Equal(t, "Invalid verification code provided, please try again.", err.Error())
}

func TestClassify_ErrorNoAPI(t *testing.T) {
	api := &fakeAPI{authErr: errors.New("dial tcp: timeout")}
	_, err := cognito.New(api, "c", nil).SignIn(context.Background(), "ana", "secret123")
	assert.Equal(t, domain.KindRemote, domain.KindOf(err))
	assert.Contains(t, err.Error(), "timeout")
}

func TestClassify_GenericAPIError(t *testing.T) {
	api := &fakeAPI{authErr: &smithy.GenericAPIError{Code: "UserNotConfirmedException"}}
	_, err := cognito.New(api, "c", nil).SignIn(context.Background(), "ana", "secret123")
	assert.True(t, domain.IsAuthentication(err))
	assert.Equal(t, "UserNotConfirmedException", err.Error())
}

// Solo los rechazos de credenciales son de autenticación; los fallos del servicio son remotos.
func TestSignIn_FallosDelServicioSonRemotos(t *testing.T) {
	cases := []error{
		&types.TooManyRequestsException{Message: aws.String("Rate exceeded")},
		&types.InternalErrorException{Message: aws.String("Internal error")},
		&types.ResourceNotFoundException{Message: aws.String("User pool client c does not exist.")},
		&smithy.GenericAPIError{Code: "InvalidParameterException", Message: "USER_PASSWORD_AUTH flow not enabled for this client"},
	}
	for _, apiErr := range cases {
		api := &fakeAPI{authErr: apiErr}
		_, err := cognito.New(api, "c", nil).SignIn(context.Background(), "ana", "secret123")
		assert.Equal(t, domain.KindRemote, domain.KindOf(err), apiErr.Error())
	}

	api := &fakeAPI{authErr: &types.TooManyRequestsException{Message: aws.String("Rate exceeded")}}
	_, err := cognito.New(api, "c", nil).SignIn(context.Background(), "ana", "secret123")
	assert.Equal(t, "Rate exceeded", err.Error())
}

func TestSignIn_UsuarioInexistenteEsAutenticacion(t *testing.T) {
	api := &fakeAPI{authErr: &types.UserNotFoundException{Message: aws.String("User does not exist.")}}
	_, err := cognito.New(api, "c", nil).SignIn(context.Background(), "ana", "secret123")
	assert.True(t, domain.IsAuthentication(err))
}

func TestSignUp_ThrottlingEsRemoto(t *testing.T) {
	api := &fakeAPI{signUpErr: &types.TooManyRequestsException{Message: aws.String("Rate exceeded")}}
	err := cognito.New(api, "c", nil).SignUp(context.Background(), ports.SignUpInput{Username: "ana"})
	assert.Equal(t, domain.KindRemote, domain.KindOf(err))
}

func TestFileCache_PersisteEntreClientes(t *testing.T) {
	cache := cognito.FileCache{Path: filepath.Join(t.TempDir(), "laika", "session.json")}
	api := &fakeAPI{authOut: authOK(t, 60)}

	_, err := cognito.New(api, "c", nil, cognito.WithSessionCache(cache)).SignIn(context.Background(), "ana", "secret123")
	require.NoError(t, err)

	again := cognito.New(api, "c", nil, cognito.WithSessionCache(cache))
	_, err = again.IDToken(context.Background())
	require.NoError(t, err)

	require.NoError(t, again.SignOut(context.Background()))
	s, err := cache.Load()
	require.NoError(t, err)
	assert.Nil(t, s)
}

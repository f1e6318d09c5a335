package cognito

import (
	"errors"

	"github.com/aws/smithy-go"

	"github.com/rutujaMandapmalvi3/Laika/internal/domain"
)

// Rechazos de credenciales o de sesión en InitiateAuth / operaciones con access token.
var credentialRejections = map[string]bool{
	"NotAuthorizedException":         true,
	"UserNotFoundException":          true,
	"UserNotConfirmedException":      true,
	"PasswordResetRequiredException": true,
}

// Fallos del servicio, nunca atribuibles a los datos del usuario.
var serviceFailures = map[string]bool{
	"TooManyRequestsException":       true,
	"LimitExceededException":         true,
	"InternalErrorException":         true,
	"ResourceNotFoundException":      true,
	"InvalidLambdaResponseException": true,
	"UnexpectedLambdaException":      true,
}

// classify convierte un error del SDK en error de dominio.
// kind es la clase de los rechazos propios de la operación (credenciales en SignIn,
// datos de alta en SignUp); los fallos del servicio son siempre KindRemote.
// El mensaje del proveedor se conserva literal: es lo que se le muestra al usuario.
func classify(kind domain.Kind, err error) error {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return domain.Wrap(domain.KindRemote, "", err)
	}
	code := apiErr.ErrorCode()
	msg := apiErr.ErrorMessage()
	if msg == "" {
		msg = code
	}

	switch {
	case serviceFailures[code]:
		kind = domain.KindRemote
	case kind == domain.KindAuthentication && !credentialRejections[code]:
		kind = domain.KindRemote
	case kind == domain.KindRemote && code == "NotAuthorizedException":
		// Token revocado o vencido en operaciones con access token.
		kind = domain.KindAuthentication
	}
	return &domain.Error{Kind: kind, Message: msg}
}

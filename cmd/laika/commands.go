package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rutujaMandapmalvi3/Laika/internal/application/bootstrap"
	"github.com/rutujaMandapmalvi3/Laika/internal/application/dto"
	"github.com/rutujaMandapmalvi3/Laika/internal/application/ports"
	"github.com/rutujaMandapmalvi3/Laika/internal/application/session"
	"github.com/rutujaMandapmalvi3/Laika/internal/domain"
	"github.com/rutujaMandapmalvi3/Laika/internal/domain/entity"
	"github.com/rutujaMandapmalvi3/Laika/pkg/jwt"
)

var errUsage = errors.New("uso")

// workflow subconjunto de bootstrap.Workflow que usan los comandos.
type workflow interface {
	Register(ctx context.Context, in dto.RegisterRequest) error
	Confirm(ctx context.Context, username, code string) error
	Resend(ctx context.Context, username string) error
	Login(ctx context.Context, in dto.LoginRequest) (*entity.SessionOutcome, error)
	CompleteProfile(ctx context.Context, in dto.CompleteProfileRequest) (*bootstrap.ProfileCompletion, error)
	CurrentUser(ctx context.Context) (*ports.CurrentUser, error)
	Logout(ctx context.Context) error
}

type app struct {
	workflow workflow
	tokens   ports.TokenSource
	session  *session.Store
	out      io.Writer
}

func (a *app) run(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "register":
		in, err := parseRegister(args)
		if err != nil {
			return err
		}
		if err := a.workflow.Register(ctx, in); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Cuenta creada. Revisa %s y ejecuta: laika confirm -username %s -code <código>\n", in.Email, in.Username)
		return nil

	case "confirm":
		fs := flag.NewFlagSet("confirm", flag.ContinueOnError)
		username := fs.String("username", "", "usuario")
		code := fs.String("code", "", "código de verificación")
		if err := fs.Parse(args); err != nil {
			return err
		}
		if err := a.workflow.Confirm(ctx, *username, *code); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "Cuenta confirmada. Ya puedes iniciar sesión.")
		return nil

	case "resend":
		fs := flag.NewFlagSet("resend", flag.ContinueOnError)
		username := fs.String("username", "", "usuario")
		if err := fs.Parse(args); err != nil {
			return err
		}
		if err := a.workflow.Resend(ctx, *username); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "Código reenviado.")
		return nil

	case "login":
		in, err := parseLogin(args)
		if err != nil {
			return err
		}
		out, err := a.workflow.Login(ctx, in)
		if err != nil {
			return err
		}
		a.session.ApplyLoginOutcome(*out)
		return a.printState(bootstrap.RouteForOutcome(out))

	case "complete-profile":
		in, err := parseCompleteProfile(args)
		if err != nil {
			return err
		}
		// userId y email salen del ID token de la sesión, nunca de flags.
		token, err := a.tokens.IDToken(ctx)
		if err != nil {
			return err
		}
		claims, err := jwt.ParseUnverified(token)
		if err != nil {
			return domain.Wrap(domain.KindAuthentication, "ID token inválido", err)
		}
		in.UserID = claims.UserID()
		in.Email = claims.Email

		done, err := a.workflow.CompleteProfile(ctx, in)
		if err != nil {
			return err
		}
		return a.printJSON(done)

	case "whoami":
		user, err := a.workflow.CurrentUser(ctx)
		if err != nil {
			return err
		}
		return a.printJSON(user)

	case "logout":
		if err := a.workflow.Logout(ctx); err != nil {
			return err
		}
		a.session.Logout()
		fmt.Fprintln(a.out, "Sesión cerrada.")
		return nil
	}
	return errUsage
}

// printState imprime el estado de sesión resultante y la ruta a la que navegaría la app.
func (a *app) printState(route bootstrap.Route) error {
	st := a.session.Snapshot()
	return a.printJSON(struct {
		Route             bootstrap.Route     `json:"route"`
		UserID            string              `json:"userId"`
		Email             string              `json:"email"`
		Role              entity.Role         `json:"role,omitempty"`
		NeedsProfileSetup bool                `json:"needsProfileSetup"`
		UserProfile       *entity.UserProfile `json:"userProfile,omitempty"`
		RoleProfile       entity.RoleProfile  `json:"roleProfile,omitempty"`
	}{route, st.UserID, st.Email, st.Role, st.NeedsProfileSetup, st.UserProfile, st.RoleProfile})
}

func (a *app) printJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func parseRegister(args []string) (dto.RegisterRequest, error) {
	var in dto.RegisterRequest
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	fs.StringVar(&in.Email, "email", "", "email")
	fs.StringVar(&in.Username, "username", "", "usuario")
	fs.StringVar(&in.Password, "password", os.Getenv("LAIKA_PASSWORD"), "contraseña (o LAIKA_PASSWORD)")
	fs.StringVar(&in.ConfirmPassword, "confirm-password", "", "repetir contraseña (por defecto igual a -password)")
	fs.StringVar(&in.FirstName, "first-name", "", "nombre")
	fs.StringVar(&in.LastName, "last-name", "", "apellido")
	fs.StringVar(&in.PhoneNumber, "phone", "", "teléfono E.164, p. ej. +15035550100")
	role := fs.String("role", "", "owner, vet o shelter (informativo)")
	if err := fs.Parse(args); err != nil {
		return in, err
	}
	if in.ConfirmPassword == "" {
		in.ConfirmPassword = in.Password
	}
	in.Role = entity.Role(*role)
	return in, nil
}

func parseLogin(args []string) (dto.LoginRequest, error) {
	var in dto.LoginRequest
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	fs.StringVar(&in.Username, "username", "", "usuario")
	fs.StringVar(&in.Password, "password", os.Getenv("LAIKA_PASSWORD"), "contraseña (o LAIKA_PASSWORD)")
	if err := fs.Parse(args); err != nil {
		return in, err
	}
	return in, nil
}

func parseCompleteProfile(args []string) (dto.CompleteProfileRequest, error) {
	var in dto.CompleteProfileRequest
	var role, specs string
	fs := flag.NewFlagSet("complete-profile", flag.ContinueOnError)
	fs.StringVar(&role, "role", "", "owner, vet o shelter")
	fs.StringVar(&in.FirstName, "first-name", "", "nombre")
	fs.StringVar(&in.LastName, "last-name", "", "apellido")
	fs.StringVar(&in.PhoneNumber, "phone", "", "teléfono")
	fs.StringVar(&in.Address.Street, "street", "", "dirección")
	fs.StringVar(&in.Address.City, "city", "", "ciudad")
	fs.StringVar(&in.Address.State, "state", "", "estado")
	fs.StringVar(&in.Address.ZipCode, "zip", "", "código postal")
	fs.StringVar(&in.Address.Country, "country", "USA", "país")
	fs.StringVar(&in.Vet.ClinicName, "clinic", "", "vet: nombre de la clínica")
	fs.StringVar(&in.Vet.LicenseNumber, "license", "", "vet: número de licencia")
	fs.StringVar(&specs, "specializations", "", "vet: especialidades separadas por coma")
	fs.IntVar(&in.Vet.YearsOfExperience, "years", 0, "vet: años de experiencia")
	fs.StringVar(&in.Shelter.ShelterName, "shelter-name", "", "shelter: nombre del refugio")
	fs.IntVar(&in.Shelter.Capacity, "capacity", 0, "shelter: capacidad")
	fs.StringVar(&in.Shelter.RegistrationNumber, "registration", "", "shelter: número de registro")
	if err := fs.Parse(args); err != nil {
		return in, err
	}
	in.Role = entity.Role(role)
	in.Vet.Specializations = splitList(specs)
	return in, nil
}

// splitList "a, b,,c" -> [a b c].
func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

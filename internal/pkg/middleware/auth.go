package middleware

import (
	"context"
	"errors"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/piresc/docshare/internal/pkg/apperror"
	"github.com/piresc/docshare/internal/pkg/constants"
	"github.com/piresc/docshare/internal/pkg/logger"
	"github.com/piresc/docshare/internal/pkg/models"
	"github.com/piresc/docshare/internal/pkg/session"
	"github.com/piresc/docshare/internal/utils"
)

const authResultKey = "auth_result"

// AdminLookup re-fetches the admin behind a session
type AdminLookup interface {
	GetAdminByID(ctx context.Context, id string) (*models.Admin, error)
}

// UserLookup re-fetches the user behind a session
type UserLookup interface {
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

type authResult struct {
	principal models.Principal
	sessionID string
}

type resolveFunc func(ctx context.Context, principalID string) (models.Principal, error)

var errTokenType = apperror.New(apperror.KindSessionInvalid, "Invalid or expired token")

// AdminAuth admits requests carrying a live admin session
func AdminAuth(sessions session.Manager, admins AdminLookup) echo.MiddlewareFunc {
	return principalAuth(sessions, models.PrincipalAdmin, func(ctx context.Context, id string) (models.Principal, error) {
		admin, err := admins.GetAdminByID(ctx, id)
		if err != nil {
			if apperror.Is(err, apperror.KindNotFound) {
				return nil, apperror.New(apperror.KindSessionInvalid, "Admin not found")
			}
			return nil, err
		}
		return admin.Principal(), nil
	})
}

// UserAuth admits requests carrying a live session of a verified user
func UserAuth(sessions session.Manager, users UserLookup) echo.MiddlewareFunc {
	return principalAuth(sessions, models.PrincipalUser, func(ctx context.Context, id string) (models.Principal, error) {
		user, err := users.GetUserByID(ctx, id)
		if err != nil && !apperror.Is(err, apperror.KindNotFound) {
			return nil, err
		}
		if user == nil || !user.IsVerified {
			return nil, apperror.New(apperror.KindSessionInvalid, "User not found or not verified")
		}
		return user.Principal(), nil
	})
}

func principalAuth(sessions session.Manager, expected models.PrincipalType, resolve resolveFunc) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey: authResultKey,
		ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
			ctx := c.Request().Context()

			claims, err := sessions.Validate(ctx, auth)
			if err != nil {
				return nil, err
			}
			if claims.PrincipalType != expected {
				return nil, errTokenType
			}

			principal, err := resolve(ctx, claims.PrincipalID)
			if err != nil {
				return nil, err
			}
			return &authResult{principal: principal, sessionID: claims.SessionID}, nil
		},
		SuccessHandler: func(c echo.Context) {
			res, ok := c.Get(authResultKey).(*authResult)
			if !ok {
				return
			}
			c.Set(constants.ContextKeyPrincipal, res.principal)
			c.Set(constants.ContextKeySessionID, res.sessionID)
			c.Set(constants.ContextKeyPrincipalID, res.principal.PrincipalID())
			SetPrincipal(c, res.principal)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			// anything that is not an application error came from token extraction
			var appErr *apperror.Error
			if !errors.As(err, &appErr) && !errors.Is(err, context.DeadlineExceeded) {
				return utils.UnauthorizedResponse(c, "Access token required")
			}

			switch apperror.KindOf(err) {
			case apperror.KindSessionInvalid, apperror.KindNotFound, apperror.KindInvalidCredential:
				return utils.UnauthorizedResponse(c, apperror.PublicMessage(err))
			}

			logger.Error("Authentication failed",
				logger.String("path", c.Path()),
				logger.String("principal_type", string(expected)),
				logger.Err(err))
			NoticeError(c, err)
			return utils.InternalServerErrorResponse(c, constants.MsgAuthFailed)
		},
	})
}

// PrincipalFrom returns the principal resolved by AdminAuth or UserAuth
func PrincipalFrom(c echo.Context) (models.Principal, bool) {
	p, ok := c.Get(constants.ContextKeyPrincipal).(models.Principal)
	return p, ok
}

// AdminFrom returns the admin resolved by AdminAuth
func AdminFrom(c echo.Context) (*models.AdminPrincipal, bool) {
	p, ok := c.Get(constants.ContextKeyPrincipal).(*models.AdminPrincipal)
	return p, ok
}

// UserFrom returns the user resolved by UserAuth
func UserFrom(c echo.Context) (*models.UserPrincipal, bool) {
	p, ok := c.Get(constants.ContextKeyPrincipal).(*models.UserPrincipal)
	return p, ok
}

// SessionIDFrom returns the session identifier of the authenticated request
func SessionIDFrom(c echo.Context) string {
	id, _ := c.Get(constants.ContextKeySessionID).(string)
	return id
}

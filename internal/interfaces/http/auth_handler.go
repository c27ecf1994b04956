package http

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/tu-usuario/mes-api/internal/application/auth"
	"github.com/tu-usuario/mes-api/internal/application/dto"
	"github.com/tu-usuario/mes-api/internal/domain"
	"github.com/tu-usuario/mes-api/internal/infrastructure/spreadsheet"
)

// AuthHandler maneja login, registro, import masivo y consultas de usuarios.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login autentica (username, password, factory) y devuelve el token de sesión.
// POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("INVALID_BODY", "cuerpo inválido"))
	}
	if in.Username == "" || in.Password == "" || in.Factory == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("VALIDATION", "username, password y factory son requeridos"))
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			// Mensaje único: nunca se revela cuál factor falló
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("UNAUTHORIZED", "cuenta, contraseña o planta incorrecta"))
		}
		log.Error().Err(err).Str("username", in.Username).Msg("login")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("SYSTEM", "error del sistema, intente más tarde"))
	}
	return c.JSON(dto.OK(out, "inicio de sesión exitoso"))
}

// Register crea una cuenta nueva; si no se envía password, se genera una y se
// devuelve una única vez.
// POST /api/auth/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("INVALID_BODY", "cuerpo inválido"))
	}
	out, err := h.uc.Register(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("VALIDATION", err.Error()))
		case errors.Is(err, domain.ErrUserAlreadyExists):
			return c.Status(fiber.StatusConflict).JSON(dto.Fail("USER_EXISTS", "el usuario ya existe en esa planta"))
		}
		log.Error().Err(err).Str("username", in.Username).Msg("register")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("SYSTEM", "error del sistema, intente más tarde"))
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(out, "usuario registrado"))
}

// Me devuelve la identidad del llamador según su token.
// GET /api/auth/me
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	factory, _ := GetFactory(c)
	return c.JSON(dto.OK(dto.MeResponse{
		Username: GetUsername(c),
		Factory:  factory.String(),
	}, ""))
}

// ListUsers devuelve todos los usuarios (campos no sensibles).
// GET /api/auth/users
func (h *AuthHandler) ListUsers(c *fiber.Ctx) error {
	out, err := h.uc.GetAllUsers(c.Context())
	if err != nil {
		log.Error().Err(err).Msg("list users")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("SYSTEM", "error del sistema, intente más tarde"))
	}
	return c.JSON(dto.OK(out, "usuarios obtenidos"))
}

// ImportUsers procesa un archivo .xlsx o .csv con columnas Username, Factory,
// Password y registra cada fila de forma independiente. Solo admin.
// POST /api/auth/import-users (multipart, campo "file")
func (h *AuthHandler) ImportUsers(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("VALIDATION", "se requiere el archivo en el campo 'file'"))
	}
	f, err := fileHeader.Open()
	if err != nil {
		log.Error().Err(err).Msg("import users: abrir archivo")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("SYSTEM", "error del sistema, intente más tarde"))
	}
	defer f.Close()

	var src auth.RowSource
	switch strings.ToLower(filepath.Ext(fileHeader.Filename)) {
	case ".xlsx":
		xlsxSrc, err := spreadsheet.NewXLSXSource(f)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("VALIDATION", err.Error()))
		}
		defer xlsxSrc.Close()
		src = xlsxSrc
	case ".csv":
		csvSrc, err := spreadsheet.NewCSVSource(f)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("VALIDATION", err.Error()))
		}
		src = csvSrc
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("VALIDATION", "formato no soportado: use .xlsx o .csv"))
	}

	out, err := h.uc.ImportUsers(c.Context(), src)
	if err != nil {
		log.Error().Err(err).Msg("import users")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("SYSTEM", "error del sistema, intente más tarde"))
	}
	return c.JSON(dto.OK(out, "import procesado"))
}

// ImportTemplate descarga la plantilla de import en xlsx o csv.
// GET /api/auth/import-template?type=xlsx|csv
func (h *AuthHandler) ImportTemplate(c *fiber.Ctx) error {
	kind := c.Query("type", "xlsx")
	switch kind {
	case "xlsx":
		data, err := spreadsheet.BuildTemplateXLSX()
		if err != nil {
			log.Error().Err(err).Msg("generar plantilla xlsx")
			return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("SYSTEM", "error del sistema, intente más tarde"))
		}
		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="import-users-template.xlsx"`)
		return c.Send(data)
	case "csv":
		data, err := spreadsheet.BuildTemplateCSV()
		if err != nil {
			log.Error().Err(err).Msg("generar plantilla csv")
			return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("SYSTEM", "error del sistema, intente más tarde"))
		}
		c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="import-users-template.csv"`)
		return c.Send(data)
	}
	return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("VALIDATION", "type debe ser xlsx o csv"))
}

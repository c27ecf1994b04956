package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/mes-api/internal/application/auth"
	"github.com/tu-usuario/mes-api/internal/application/dto"
	"github.com/tu-usuario/mes-api/internal/domain"
	"github.com/tu-usuario/mes-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

// fakeUserRepo réplica en memoria del puerto UserRepository: unicidad sobre
// (username, factory) y lookups que devuelven nil sin error cuando no hay fila.
type fakeUserRepo struct {
	seq   int64
	users []*entity.User
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	for _, u := range f.users {
		if u.Username == user.Username && u.Factory == user.Factory {
			return domain.ErrUserAlreadyExists
		}
	}
	f.seq++
	user.ID = f.seq
	cp := *user
	f.users = append(f.users, &cp)
	return nil
}

func (f *fakeUserRepo) GetByUsernameAndFactory(_ context.Context, username string, factory entity.Factory) (*entity.User, error) {
	for _, u := range f.users {
		if u.Username == username && u.Factory == factory {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) List(_ context.Context) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(f.users))
	for _, u := range f.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

// sliceRowSource RowSource de prueba sobre un slice ya tipado.
type sliceRowSource struct {
	rows []auth.ImportUserRow
	pos  int
}

func (s *sliceRowSource) Next() (auth.ImportUserRow, bool, error) {
	if s.pos >= len(s.rows) {
		return auth.ImportUserRow{}, false, nil
	}
	row := s.rows[s.pos]
	s.pos++
	return row, true, nil
}

func newUseCase() (*auth.AuthUseCase, *fakeUserRepo) {
	repo := &fakeUserRepo{}
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:   "test-secret-key-for-unit-tests",
		ExpHours: 8,
		Issuer:   "MESSystem-test",
		Audience: "MESSystemUsers-test",
	})
	return uc, repo
}

func seedUser(t *testing.T, repo *fakeUserRepo, username, password string, factory entity.Factory, isAdmin bool) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), &entity.User{
		Username:     username,
		PasswordHash: string(hash),
		Factory:      factory,
		IsAdmin:      isAdmin,
	}))
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_AdminSembrado_CredencialesCorrectas(t *testing.T) {
	uc, repo := newUseCase()
	seedUser(t, repo, "admin", "123456", entity.FactoryTPL, true)

	out, err := uc.Login(context.Background(), dto.LoginRequest{
		Username: "admin", Password: "123456", Factory: "TPL",
	})
	require.NoError(t, err)
	assert.Equal(t, "admin", out.Username)
	assert.Equal(t, "TPL", out.Factory)
	assert.True(t, out.IsAdmin)
	assert.NotEmpty(t, out.Token)
	assert.False(t, out.ExpiresAt.IsZero())
}

func TestLogin_FalloGenerico_NoDistingueCausa(t *testing.T) {
	uc, repo := newUseCase()
	seedUser(t, repo, "admin", "123456", entity.FactoryTPL, true)

	cases := []dto.LoginRequest{
		{Username: "admin", Password: "wrong", Factory: "TPL"},  // contraseña mala
		{Username: "nadie", Password: "123456", Factory: "TPL"}, // usuario inexistente
		{Username: "admin", Password: "123456", Factory: "NVN"}, // fábrica distinta
		{Username: "admin", Password: "123456", Factory: "XXX"}, // fábrica desconocida
	}
	for _, in := range cases {
		_, err := uc.Login(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrUnauthorized,
			"todo fallo de login debe ser el mismo error genérico: %+v", in)
	}
}

func TestLogin_MismoUsernameEnOtraFabrica_SonCuentasIndependientes(t *testing.T) {
	uc, repo := newUseCase()
	seedUser(t, repo, "op01", "claveTPL", entity.FactoryTPL, false)
	seedUser(t, repo, "op01", "claveNVN", entity.FactoryNVN, false)

	out, err := uc.Login(context.Background(), dto.LoginRequest{
		Username: "op01", Password: "claveNVN", Factory: "NVN",
	})
	require.NoError(t, err)
	assert.Equal(t, "NVN", out.Factory)

	_, err = uc.Login(context.Background(), dto.LoginRequest{
		Username: "op01", Password: "claveNVN", Factory: "TPL",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_DuplicadoMismaFabrica_Conflicto(t *testing.T) {
	uc, _ := newUseCase()

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Username: "op01", Password: "secreta1", Factory: "TPL",
	})
	require.NoError(t, err)

	_, err = uc.Register(context.Background(), dto.RegisterRequest{
		Username: "op01", Password: "otra", Factory: "TPL",
	})
	assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)

	// La misma cuenta en otra fábrica sí se permite
	_, err = uc.Register(context.Background(), dto.RegisterRequest{
		Username: "op01", Password: "secreta1", Factory: "LR",
	})
	assert.NoError(t, err)
}

func TestRegister_NuncaAdmin(t *testing.T) {
	uc, repo := newUseCase()

	out, err := uc.Register(context.Background(), dto.RegisterRequest{
		Username: "op02", Password: "secreta1", Factory: "NVN",
	})
	require.NoError(t, err)
	assert.False(t, out.IsAdmin)

	u, err := repo.GetByUsername(context.Background(), "op02")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.False(t, u.IsAdmin)
}

func TestRegister_PasswordGenerada_SeDevuelveUnaVezYPermiteLogin(t *testing.T) {
	uc, _ := newUseCase()

	out, err := uc.Register(context.Background(), dto.RegisterRequest{
		Username: "op03", Factory: "TPL", // sin password
	})
	require.NoError(t, err)
	require.Len(t, out.GeneratedPassword, 8, "la contraseña generada tiene largo fijo 8")

	// No hay forma de recuperarla después: el listado solo expone campos no sensibles
	users, err := uc.GetAllUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)

	// La contraseña generada verifica en el siguiente login
	sess, err := uc.Login(context.Background(), dto.LoginRequest{
		Username: "op03", Password: out.GeneratedPassword, Factory: "TPL",
	})
	require.NoError(t, err)
	assert.Equal(t, "op03", sess.Username)
}

func TestRegister_PasswordExplicita_NoSeDevuelve(t *testing.T) {
	uc, _ := newUseCase()

	out, err := uc.Register(context.Background(), dto.RegisterRequest{
		Username: "op04", Password: "miclave", Factory: "TPL",
	})
	require.NoError(t, err)
	assert.Empty(t, out.GeneratedPassword)
}

func TestRegister_Validacion(t *testing.T) {
	uc, _ := newUseCase()

	_, err := uc.Register(context.Background(), dto.RegisterRequest{Username: "", Factory: "TPL"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "username vacío")

	long := make([]byte, 51)
	for i := range long {
		long[i] = 'a'
	}
	_, err = uc.Register(context.Background(), dto.RegisterRequest{Username: string(long), Factory: "TPL"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "username > 50")

	_, err = uc.Register(context.Background(), dto.RegisterRequest{Username: "op05", Factory: "ZZZ"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "fábrica desconocida")
}

// ──────────────────────────────────────────────────────────────────────────────
// ImportUsers
// ──────────────────────────────────────────────────────────────────────────────

func TestImportUsers_FilaDuplicadaNoAbortaElLote(t *testing.T) {
	uc, repo := newUseCase()
	seedUser(t, repo, "op02", "algo", entity.FactoryTPL, false)

	src := &sliceRowSource{rows: []auth.ImportUserRow{
		{Username: "op01", Factory: "TPL"},
		{Username: "op02", Factory: "TPL"}, // duplicado sembrado
		{Username: "op03", Factory: "NVN", Password: "clave123"},
		{Username: "op04", Factory: "QQQ"}, // fábrica desconocida
		{Username: "op05", Factory: "LR"},
	}}

	out, err := uc.ImportUsers(context.Background(), src)
	require.NoError(t, err)
	require.Len(t, out.Results, 5, "una entrada por fila, sin abortar")

	assert.True(t, out.Results[0].Success)
	assert.NotEmpty(t, out.Results[0].GeneratedPassword, "sin password en la fila se genera una")

	assert.False(t, out.Results[1].Success)
	assert.NotEmpty(t, out.Results[1].Error, "el duplicado lleva mensaje de conflicto")

	assert.True(t, out.Results[2].Success)
	assert.Empty(t, out.Results[2].GeneratedPassword, "la fila traía password propia")

	assert.False(t, out.Results[3].Success)

	assert.True(t, out.Results[4].Success, "las filas posteriores al fallo se procesan igual")
}

func TestImportUsers_FilaIlegible_SeRegistraYContinua(t *testing.T) {
	uc, _ := newUseCase()

	src := &errRowSource{}
	out, err := uc.ImportUsers(context.Background(), src)
	require.NoError(t, err)
	require.Len(t, out.Results, 2)
	assert.False(t, out.Results[0].Success)
	assert.NotEmpty(t, out.Results[0].Error)
	assert.True(t, out.Results[1].Success)
}

// errRowSource primera fila ilegible, segunda válida.
type errRowSource struct{ pos int }

func (s *errRowSource) Next() (auth.ImportUserRow, bool, error) {
	s.pos++
	switch s.pos {
	case 1:
		return auth.ImportUserRow{}, true, assert.AnError
	case 2:
		return auth.ImportUserRow{Username: "op09", Factory: "TPL"}, true, nil
	}
	return auth.ImportUserRow{}, false, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Consultas
// ──────────────────────────────────────────────────────────────────────────────

func TestGetAllUsers_SoloCamposNoSensibles(t *testing.T) {
	uc, repo := newUseCase()
	seedUser(t, repo, "admin", "123456", entity.FactoryTPL, true)
	seedUser(t, repo, "op01", "clave", entity.FactoryNVN, false)

	out, err := uc.GetAllUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, dto.UserResponse{Username: "admin", Factory: "TPL", IsAdmin: true}, out[0])
	assert.Equal(t, dto.UserResponse{Username: "op01", Factory: "NVN", IsAdmin: false}, out[1])
}

func TestGetUserByUsername_IgnoraFabrica(t *testing.T) {
	uc, repo := newUseCase()
	seedUser(t, repo, "admin", "123456", entity.FactoryNVN, true)

	u, err := uc.GetUserByUsername(context.Background(), "admin")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, entity.FactoryNVN, u.Factory)

	u, err = uc.GetUserByUsername(context.Background(), "nadie")
	require.NoError(t, err)
	assert.Nil(t, u)
}

package auth_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/miriamyi01/facturas-cfdi/internal/application/auth"
	"github.com/miriamyi01/facturas-cfdi/internal/application/dto"
	"github.com/miriamyi01/facturas-cfdi/internal/domain"
	"github.com/miriamyi01/facturas-cfdi/internal/domain/entity"
	pkgjwt "github.com/miriamyi01/facturas-cfdi/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorio en memoria con la misma semántica de unicidad que PostgreSQL
// ──────────────────────────────────────────────────────────────────────────────

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*entity.User{}}
}

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
		if existing.RFC == u.RFC {
			return domain.ErrRFCAlreadyExists
		}
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memUserRepo) find(match func(*entity.User) bool) *entity.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if match(u) {
			cp := *u
			return &cp
		}
	}
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.ID == id }), nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.Email == email }), nil
}

func (r *memUserRepo) GetByRFC(_ context.Context, rfc string) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.RFC == rfc }), nil
}

func (r *memUserRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users)
}

const testSecret = "test-secret-key-for-unit-tests"

func newUseCase(repo *memUserRepo) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, auth.JWTConfig{Secret: testSecret, ExpMinutes: 60, Issuer: "facturas-test"})
}

func validRequest() dto.RegisterRequest {
	return dto.RegisterRequest{
		Name:     "maría lópez pérez",
		Password: "secreto123",
		Email:    "Maria@Farmacia.mx",
		RFC:      "abcd010101ab1",
		Address: dto.AddressRequest{
			Street:         "av. reforma",
			ExteriorNumber: "100",
			Neighborhood:   "juárez",
			Municipality:   "cuauhtémoc",
			PostalCode:     "06600",
			State:          "cdmx",
			Country:        "méxico",
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Registro
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterUser_NormalizaYPersiste(t *testing.T) {
	repo := newMemUserRepo()
	uc := newUseCase(repo)

	out, err := uc.RegisterUser(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "MARÍA LÓPEZ PÉREZ", out.Name)
	assert.Equal(t, "maria@farmacia.mx", out.Email)
	assert.Equal(t, "ABCD010101AB1", out.RFC)
	assert.Equal(t, "AV. REFORMA, 100, JUÁREZ, CUAUHTÉMOC, 06600, CDMX, MÉXICO", out.Address,
		"el número interior vacío no deja separadores de más")

	stored, _ := repo.GetByRFC(context.Background(), "ABCD010101AB1")
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreto123", stored.PasswordHash, "el password nunca se guarda en claro")
}

func TestRegisterUser_Validaciones(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*dto.RegisterRequest)
		want   error
	}{
		{"nombre con dos palabras", func(r *dto.RegisterRequest) { r.Name = "MARÍA LÓPEZ" }, domain.ErrInvalidName},
		{"RFC de 12", func(r *dto.RegisterRequest) { r.RFC = "ABCD010101AB" }, domain.ErrInvalidRFC},
		{"RFC de 14", func(r *dto.RegisterRequest) { r.RFC = "ABCD010101AB12" }, domain.ErrInvalidRFC},
		{"correo sin arroba", func(r *dto.RegisterRequest) { r.Email = "maria.farmacia.mx" }, domain.ErrInvalidEmail},
		{"correo sin punto en dominio", func(r *dto.RegisterRequest) { r.Email = "maria@farmacia" }, domain.ErrInvalidEmail},
		{"calle vacía", func(r *dto.RegisterRequest) { r.Address.Street = "" }, domain.ErrInvalidInput},
		{"password corto", func(r *dto.RegisterRequest) { r.Password = "corto" }, domain.ErrInvalidInput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newMemUserRepo()
			req := validRequest()
			tc.mutate(&req)

			_, err := newUseCase(repo).RegisterUser(context.Background(), req)
			assert.ErrorIs(t, err, tc.want)
			assert.Equal(t, 0, repo.count(), "una validación fallida no crea registros")
		})
	}
}

func TestRegisterUser_CorreoDuplicado(t *testing.T) {
	repo := newMemUserRepo()
	uc := newUseCase(repo)
	_, err := uc.RegisterUser(context.Background(), validRequest())
	require.NoError(t, err)

	second := validRequest()
	second.RFC = "WXYZ020202CD2"
	_, err = uc.RegisterUser(context.Background(), second)

	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	assert.Equal(t, 1, repo.count())
}

func TestRegisterUser_RFCDuplicado(t *testing.T) {
	repo := newMemUserRepo()
	uc := newUseCase(repo)
	_, err := uc.RegisterUser(context.Background(), validRequest())
	require.NoError(t, err)

	second := validRequest()
	second.Email = "otra@farmacia.mx"
	_, err = uc.RegisterUser(context.Background(), second)

	assert.ErrorIs(t, err, domain.ErrRFCAlreadyExists)
	assert.Equal(t, 1, repo.count())
}

// Registros simultáneos con el mismo correo: exactamente una fila; el resto
// recibe el conflicto, sin importar cuál gane.
func TestRegisterUser_ConcurrenteMismoCorreo(t *testing.T) {
	repo := newMemUserRepo()
	uc := newUseCase(repo)

	const n = 8
	var (
		wg    sync.WaitGroup
		start = make(chan struct{})
		errs  = make([]error, n)
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			req := validRequest()
			req.RFC = fmt.Sprintf("ABCD0101%02dAB", i) + "1"
			<-start
			_, errs[i] = uc.RegisterUser(context.Background(), req)
		}(i)
	}
	close(start)
	wg.Wait()

	assert.Equal(t, 1, repo.count(), "solo un usuario persistido")
	ok := 0
	for _, err := range errs {
		if err == nil {
			ok++
			continue
		}
		assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	}
	assert.Equal(t, 1, ok, "exactamente un registro exitoso")
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesCorrectas(t *testing.T) {
	repo := newMemUserRepo()
	uc := newUseCase(repo)
	req := validRequest()
	req.IsEmployee = true
	_, err := uc.RegisterUser(context.Background(), req)
	require.NoError(t, err)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: "maria@farmacia.mx", Password: "secreto123"})
	require.NoError(t, err)
	assert.Equal(t, "ABCD010101AB1", out.User.RFC)

	claims, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, claims.UserID)
	assert.Equal(t, "ABCD010101AB1", claims.RFC)
	assert.Equal(t, entity.RoleEmpleado, claims.Role)
}

func TestLogin_FalloUniforme(t *testing.T) {
	repo := newMemUserRepo()
	uc := newUseCase(repo)
	_, err := uc.RegisterUser(context.Background(), validRequest())
	require.NoError(t, err)

	_, errUnknown := uc.Login(context.Background(), dto.LoginRequest{Email: "nadie@farmacia.mx", Password: "secreto123"})
	_, errWrong := uc.Login(context.Background(), dto.LoginRequest{Email: "maria@farmacia.mx", Password: "incorrecto"})

	assert.ErrorIs(t, errUnknown, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, errWrong, domain.ErrInvalidCredentials)
	assert.Equal(t, errUnknown.Error(), errWrong.Error(), "el mensaje no distingue la causa")
}

package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/montesagrado/camposanto-api/internal/application/auth"
	"github.com/montesagrado/camposanto-api/internal/application/dto"
	"github.com/montesagrado/camposanto-api/internal/domain"
	"github.com/montesagrado/camposanto-api/internal/domain/entity"
	pkgjwt "github.com/montesagrado/camposanto-api/pkg/jwt"
)

type fakeUserRepo struct {
	users map[string]*entity.User // por email
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	if _, ok := f.users[u.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	cp := *u
	f.users[u.Email] = &cp
	return nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func newAuthUC() (*auth.AuthUseCase, *fakeUserRepo) {
	repo := &fakeUserRepo{users: map[string]*entity.User{}}
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     "test-secret",
		ExpMinutes: 60,
		Issuer:     "camposanto-api-test",
	})
	return uc, repo
}

func TestRegister_YLogin(t *testing.T) {
	uc, _ := newAuthUC()

	user, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email:    "admin@camposanto.do",
		Password: "secreto-largo",
		Nombre:   "Admin",
	})
	require.NoError(t, err)
	assert.Equal(t, "admin@camposanto.do", user.Email)
	assert.Equal(t, "Admin", user.Nombre)

	out, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "admin@camposanto.do",
		Password: "secreto-largo",
	})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, user.ID, out.User.ID)

	// El token emitido es parseable con el mismo secret y lleva los claims.
	userID, name, err := pkgjwt.Parse("test-secret", out.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
	assert.Equal(t, "Admin", name)
}

func TestRegister_Validaciones(t *testing.T) {
	uc, _ := newAuthUC()

	_, err := uc.Register(context.Background(), dto.RegisterRequest{Email: "", Password: "secreto-largo"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Register(context.Background(), dto.RegisterRequest{Email: "a@b.do", Password: "corta"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "password de menos de 8 caracteres")
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc, _ := newAuthUC()

	_, err := uc.Register(context.Background(), dto.RegisterRequest{Email: "a@b.do", Password: "secreto-largo"})
	require.NoError(t, err)

	_, err = uc.Register(context.Background(), dto.RegisterRequest{Email: "a@b.do", Password: "otro-secreto"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin_Errores(t *testing.T) {
	uc, _ := newAuthUC()
	_, err := uc.Register(context.Background(), dto.RegisterRequest{Email: "a@b.do", Password: "secreto-largo"})
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "nadie@b.do", Password: "lo-que-sea"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "a@b.do", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

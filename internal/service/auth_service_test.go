package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Fellah73/nursery-management-api-sub000/config"
	"github.com/Fellah73/nursery-management-api-sub000/internal/dto"
	"github.com/Fellah73/nursery-management-api-sub000/internal/model"
	"github.com/Fellah73/nursery-management-api-sub000/internal/repository"
	"github.com/Fellah73/nursery-management-api-sub000/pkg/jwt"
)

// ── 测试辅助 ──

func setupTestAuthService(t *testing.T) (AuthService, *mockUserRepo, *model.User) {
	t.Helper()
	userRepo := newMockUserRepo()
	repo := &repository.Repository{User: userRepo}

	authCfg := &config.AuthConfig{
		JWTSecret:       "test-secret-for-auth-service",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 7 * 24 * time.Hour,
	}
	jwtMgr := jwt.NewManager(authCfg)

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("生成密码哈希失败: %v", err)
	}
	user := &model.User{
		Name:         "张园长",
		Email:        "admin@nursery.local",
		PasswordHash: string(hash),
		Role:         "admin",
	}
	_ = userRepo.Create(context.Background(), user)

	// Redis 不启用，走降级路径
	svc := NewAuthService(repo, jwtMgr, nil, authCfg, zap.NewNop())
	return svc, userRepo, user
}

// ── Login 测试 ──

func TestAuthService_Login_Success(t *testing.T) {
	svc, _, user := setupTestAuthService(t)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@nursery.local",
		Password: "correct-password",
	})
	if err != nil {
		t.Fatalf("Login 应成功: %v", err)
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Error("登录响应应同时携带双令牌")
	}
	if resp.ExpiresIn != int64((15 * time.Minute).Seconds()) {
		t.Errorf("期望 ExpiresIn=900，实际=%d", resp.ExpiresIn)
	}
	if resp.User.ID != user.UserID {
		t.Errorf("期望用户ID=%s，实际=%s", user.UserID, resp.User.ID)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, _, _ := setupTestAuthService(t)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@nursery.local",
		Password: "wrong-password",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("期望 ErrInvalidCredentials，实际: %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, _, _ := setupTestAuthService(t)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@nursery.local",
		Password: "correct-password",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("未知邮箱与密码错误应返回同一错误，实际: %v", err)
	}
}

// ── Refresh 测试 ──

func TestAuthService_Refresh_Success(t *testing.T) {
	svc, _, _ := setupTestAuthService(t)

	login, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@nursery.local",
		Password: "correct-password",
	})
	if err != nil {
		t.Fatalf("Login 应成功: %v", err)
	}

	resp, err := svc.Refresh(context.Background(), &dto.RefreshRequest{RefreshToken: login.RefreshToken})
	if err != nil {
		t.Fatalf("Refresh 应成功: %v", err)
	}
	if resp.AccessToken == "" {
		t.Error("刷新应返回新的 Access Token")
	}
}

func TestAuthService_Refresh_RejectsAccessToken(t *testing.T) {
	svc, _, _ := setupTestAuthService(t)

	login, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@nursery.local",
		Password: "correct-password",
	})
	if err != nil {
		t.Fatalf("Login 应成功: %v", err)
	}

	// 用 Access Token 冒充刷新令牌
	_, err = svc.Refresh(context.Background(), &dto.RefreshRequest{RefreshToken: login.AccessToken})
	if !errors.Is(err, ErrInvalidRefresh) {
		t.Errorf("期望 ErrInvalidRefresh，实际: %v", err)
	}
}

func TestAuthService_Refresh_DeletedUser(t *testing.T) {
	svc, userRepo, user := setupTestAuthService(t)

	login, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@nursery.local",
		Password: "correct-password",
	})
	if err != nil {
		t.Fatalf("Login 应成功: %v", err)
	}

	_ = userRepo.Delete(context.Background(), user.UserID, "admin-002")
	_, err = svc.Refresh(context.Background(), &dto.RefreshRequest{RefreshToken: login.RefreshToken})
	if !errors.Is(err, ErrInvalidRefresh) {
		t.Errorf("用户已删除时期望 ErrInvalidRefresh，实际: %v", err)
	}
}

// ── ChangePassword 测试 ──

func TestAuthService_ChangePassword(t *testing.T) {
	svc, _, user := setupTestAuthService(t)

	err := svc.ChangePassword(context.Background(), user.UserID, &dto.ChangePasswordRequest{
		OldPassword: "wrong-old",
		NewPassword: "brand-new-password",
	})
	if !errors.Is(err, ErrOldPasswordWrong) {
		t.Errorf("期望 ErrOldPasswordWrong，实际: %v", err)
	}

	err = svc.ChangePassword(context.Background(), user.UserID, &dto.ChangePasswordRequest{
		OldPassword: "correct-password",
		NewPassword: "brand-new-password",
	})
	if err != nil {
		t.Fatalf("ChangePassword 应成功: %v", err)
	}

	// 新密码立即生效
	if _, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@nursery.local",
		Password: "brand-new-password",
	}); err != nil {
		t.Errorf("改密后用新密码登录应成功: %v", err)
	}
}

// ── Logout 测试 ──

func TestAuthService_Logout_NoRedis(t *testing.T) {
	svc, _, _ := setupTestAuthService(t)

	login, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@nursery.local",
		Password: "correct-password",
	})
	if err != nil {
		t.Fatalf("Login 应成功: %v", err)
	}

	// Redis 未启用时登出降级为 no-op
	if err := svc.Logout(context.Background(), login.AccessToken); err != nil {
		t.Errorf("Logout 应降级成功: %v", err)
	}
	// 无效 Token 同样不报错
	if err := svc.Logout(context.Background(), "not-a-token"); err != nil {
		t.Errorf("无效 Token 登出应直接返回: %v", err)
	}
}

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/taskdeck/taskdeck-go/internal/crypto"
	"github.com/taskdeck/taskdeck-go/internal/model"
	"github.com/taskdeck/taskdeck-go/internal/repository"
	"github.com/taskdeck/taskdeck-go/internal/validate"
)

var userTestSecret = []byte("user-service-test-secret")

func newTestUserService() (*UserService, *memUserStore) {
	store := newMemUserStore()
	return NewUserService(store, userTestSecret, time.Hour), store
}

func validSignup() model.SignupRequest {
	return model.SignupRequest{
		UserID:          "user01",
		Username:        "홍길동",
		Password:        "Password1!",
		ConfirmPassword: "Password1!",
		PhoneNo:         "01012345678",
		Email:           "test@todo.com",
	}
}

func mustRegister(t *testing.T, svc *UserService, req model.SignupRequest) *model.User {
	t.Helper()
	user, err := svc.Register(context.Background(), req)
	if err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}
	return user
}

func TestRegister(t *testing.T) {
	svc, _ := newTestUserService()
	user := mustRegister(t, svc, validSignup())

	if user.UserID != "user01" {
		t.Errorf("Register() userId = %q, want %q", user.UserID, "user01")
	}
	if user.PasswordHash == "Password1!" {
		t.Error("Register() stored the plaintext password")
	}
	if !crypto.VerifyPassword("Password1!", user.PasswordHash) {
		t.Error("Register() hash does not verify against the password")
	}
	if user.CreatedAt.IsZero() || user.UpdatedAt.IsZero() {
		t.Error("Register() timestamps not set")
	}
}

func TestRegisterDuplicateUserID(t *testing.T) {
	svc, _ := newTestUserService()
	mustRegister(t, svc, validSignup())

	_, err := svc.Register(context.Background(), validSignup())
	if !errors.Is(err, ErrUserIDTaken) {
		t.Errorf("Register() error = %v, want ErrUserIDTaken", err)
	}
}

func TestRegisterValidationError(t *testing.T) {
	svc, _ := newTestUserService()

	req := validSignup()
	req.ConfirmPassword = "Different1!"

	_, err := svc.Register(context.Background(), req)
	if !errors.Is(err, validate.ErrPasswordMismatch) {
		t.Errorf("Register() error = %v, want ErrPasswordMismatch", err)
	}
}

func TestLoginIssuesTokenForUser(t *testing.T) {
	svc, _ := newTestUserService()
	mustRegister(t, svc, validSignup())

	token, err := svc.Login(context.Background(), model.LoginRequest{
		UserID:   "user01",
		Password: "Password1!",
	})
	if err != nil {
		t.Fatalf("Login() unexpected error: %v", err)
	}

	subject, err := crypto.ValidateToken(token, userTestSecret)
	if err != nil {
		t.Fatalf("ValidateToken() unexpected error: %v", err)
	}
	if subject != "user01" {
		t.Errorf("token subject = %q, want %q", subject, "user01")
	}
}

func TestLoginUnknownUser(t *testing.T) {
	svc, _ := newTestUserService()

	_, err := svc.Login(context.Background(), model.LoginRequest{
		UserID:   "nobody",
		Password: "Password1!",
	})
	if !errors.Is(err, repository.ErrUserNotFound) {
		t.Errorf("Login() error = %v, want ErrUserNotFound", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newTestUserService()
	mustRegister(t, svc, validSignup())

	_, err := svc.Login(context.Background(), model.LoginRequest{
		UserID:   "user01",
		Password: "Different1!",
	})
	if !errors.Is(err, ErrBadCredentials) {
		t.Errorf("Login() error = %v, want ErrBadCredentials", err)
	}
}

func TestMe(t *testing.T) {
	svc, _ := newTestUserService()
	mustRegister(t, svc, validSignup())

	user, err := svc.Me(context.Background(), "user01")
	if err != nil {
		t.Fatalf("Me() unexpected error: %v", err)
	}
	if user.Username != "홍길동" {
		t.Errorf("Me() username = %q, want %q", user.Username, "홍길동")
	}
}

func TestMeDeletedAccount(t *testing.T) {
	// A token can outlive its account; the lookup must fail cleanly.
	svc, _ := newTestUserService()

	_, err := svc.Me(context.Background(), "ghost")
	if !errors.Is(err, repository.ErrUserNotFound) {
		t.Errorf("Me() error = %v, want ErrUserNotFound", err)
	}
}

func TestModifyRequiresCurrentPassword(t *testing.T) {
	svc, _ := newTestUserService()
	mustRegister(t, svc, validSignup())

	_, err := svc.Modify(context.Background(), "user01", model.ModifyUserRequest{
		Password: "Different1!",
		Email:    "new@todo.com",
	})
	if !errors.Is(err, ErrBadCredentials) {
		t.Errorf("Modify() error = %v, want ErrBadCredentials", err)
	}

	user, err := svc.Me(context.Background(), "user01")
	if err != nil {
		t.Fatalf("Me() unexpected error: %v", err)
	}
	if user.Email != "test@todo.com" {
		t.Error("Modify() mutated the account despite a failed password check")
	}
}

func TestModifySelectiveOverwrite(t *testing.T) {
	svc, _ := newTestUserService()
	mustRegister(t, svc, validSignup())

	user, err := svc.Modify(context.Background(), "user01", model.ModifyUserRequest{
		Password: "Password1!",
		Email:    "changed@todo.com",
	})
	if err != nil {
		t.Fatalf("Modify() unexpected error: %v", err)
	}

	if user.Email != "changed@todo.com" {
		t.Errorf("Modify() email = %q, want %q", user.Email, "changed@todo.com")
	}
	if user.Username != "홍길동" {
		t.Errorf("Modify() username = %q, want untouched", user.Username)
	}
	if user.PhoneNo != "01012345678" {
		t.Errorf("Modify() phoneNo = %q, want untouched", user.PhoneNo)
	}
}

func TestModifyAllBlankIsNoOp(t *testing.T) {
	svc, _ := newTestUserService()
	before := mustRegister(t, svc, validSignup())

	after, err := svc.Modify(context.Background(), "user01", model.ModifyUserRequest{
		Password: "Password1!",
	})
	if err != nil {
		t.Fatalf("Modify() unexpected error: %v", err)
	}

	if after.Username != before.Username || after.PhoneNo != before.PhoneNo ||
		after.Email != before.Email || after.PasswordHash != before.PasswordHash {
		t.Error("Modify() with blank fields changed the account")
	}
}

func TestModifyNewPassword(t *testing.T) {
	svc, _ := newTestUserService()
	mustRegister(t, svc, validSignup())

	_, err := svc.Modify(context.Background(), "user01", model.ModifyUserRequest{
		Password:    "Password1!",
		NewPassword: "Newpassword2@",
	})
	if err != nil {
		t.Fatalf("Modify() unexpected error: %v", err)
	}

	if _, err := svc.Login(context.Background(), model.LoginRequest{
		UserID: "user01", Password: "Password1!",
	}); !errors.Is(err, ErrBadCredentials) {
		t.Error("old password still accepted after change")
	}

	if _, err := svc.Login(context.Background(), model.LoginRequest{
		UserID: "user01", Password: "Newpassword2@",
	}); err != nil {
		t.Errorf("new password rejected after change: %v", err)
	}
}

func TestModifyInvalidField(t *testing.T) {
	svc, _ := newTestUserService()
	mustRegister(t, svc, validSignup())

	_, err := svc.Modify(context.Background(), "user01", model.ModifyUserRequest{
		Password: "Password1!",
		PhoneNo:  "010-1234-5678",
	})
	if !errors.Is(err, validate.ErrInvalidNewPhoneNo) {
		t.Errorf("Modify() error = %v, want ErrInvalidNewPhoneNo", err)
	}
}

func TestDelete(t *testing.T) {
	svc, _ := newTestUserService()
	mustRegister(t, svc, validSignup())

	snapshot, err := svc.Delete(context.Background(), "user01", "Password1!")
	if err != nil {
		t.Fatalf("Delete() unexpected error: %v", err)
	}
	if snapshot.UserID != "user01" {
		t.Errorf("Delete() snapshot userId = %q, want %q", snapshot.UserID, "user01")
	}

	if _, err := svc.Me(context.Background(), "user01"); !errors.Is(err, repository.ErrUserNotFound) {
		t.Error("account still present after Delete()")
	}
}

func TestDeleteWrongPassword(t *testing.T) {
	svc, _ := newTestUserService()
	mustRegister(t, svc, validSignup())

	_, err := svc.Delete(context.Background(), "user01", "Different1!")
	if !errors.Is(err, ErrBadCredentials) {
		t.Errorf("Delete() error = %v, want ErrBadCredentials", err)
	}

	if _, err := svc.Me(context.Background(), "user01"); err != nil {
		t.Error("account removed despite a failed password check")
	}
}

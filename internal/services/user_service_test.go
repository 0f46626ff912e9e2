package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/RBMarketing1011/restaunax/internal/apperr"
	"github.com/RBMarketing1011/restaunax/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserFixture() (*UserService, *fakeUserStore, *fakeAccountStore, *fakeVerificationStore, *fakeMailer) {
	users := newFakeUserStore()
	accounts := newFakeAccountStore(users)
	tokens := newFakeVerificationStore()
	mailer := &fakeMailer{}
	svc := NewUserService(users, accounts, tokens, mailer, "http://localhost:3000")

	verified := time.Now()
	accID := "acc1"
	users.add(model.User{ID: "owner", Name: "Olive Owner", Email: "owner@example.com", EmailVerified: &verified, AccountID: &accID})
	users.add(model.User{ID: "member1", Name: "Mel Member", Email: "member1@example.com", EmailVerified: &verified, AccountID: &accID})
	users.add(model.User{ID: "loner", Name: "Lon Free", Email: "loner@example.com", EmailVerified: &verified})
	accounts.add(model.Account{ID: accID, Name: "Olive's Restaurant", OwnerID: "owner"})

	return svc, users, accounts, tokens, mailer
}

func TestProfileOwner(t *testing.T) {
	svc, _, _, _, _ := newUserFixture()

	p, err := svc.Profile(context.Background(), "owner")
	require.NoError(t, err)
	assert.Equal(t, "owner", p.ID)
	assert.True(t, p.IsAccountOwner)
	require.NotNil(t, p.Account)
	assert.Equal(t, "Olive's Restaurant", p.Account.Name)
	require.Len(t, p.Account.Users, 2)
	assert.Equal(t, "owner", p.Account.Users[0].ID, "owner appears in the member list")
	assert.Equal(t, "member1", p.Account.Users[1].ID)
}

func TestProfileMember(t *testing.T) {
	svc, _, _, _, _ := newUserFixture()

	p, err := svc.Profile(context.Background(), "member1")
	require.NoError(t, err)
	assert.False(t, p.IsAccountOwner)
	require.NotNil(t, p.Account)
	assert.Equal(t, "acc1", p.Account.ID)
}

func TestProfileNoAccount(t *testing.T) {
	svc, _, _, _, _ := newUserFixture()

	p, err := svc.Profile(context.Background(), "loner")
	require.NoError(t, err)
	assert.Nil(t, p.Account)
	assert.Nil(t, p.AccountID)
	assert.False(t, p.IsAccountOwner)
}

func TestProfileUnknownUser(t *testing.T) {
	svc, _, _, _, _ := newUserFixture()

	_, err := svc.Profile(context.Background(), "ghost")
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestUpdateProfileNameOnly(t *testing.T) {
	svc, users, _, _, mailer := newUserFixture()

	msg, err := svc.UpdateProfile(context.Background(), "owner", "  Olivia Owner  ", "")
	require.NoError(t, err)
	assert.Equal(t, "profile updated successfully", msg)

	u := users.users["owner"]
	assert.Equal(t, "Olivia Owner", u.Name)
	assert.Equal(t, "owner@example.com", u.Email)
	assert.NotNil(t, u.EmailVerified, "unchanged email keeps its verification")
	assert.Empty(t, mailer.sent)
}

func TestUpdateProfileSameEmailIsNoChange(t *testing.T) {
	svc, users, _, _, mailer := newUserFixture()

	_, err := svc.UpdateProfile(context.Background(), "owner", "Olive Owner", "owner@example.com")
	require.NoError(t, err)
	assert.NotNil(t, users.users["owner"].EmailVerified)
	assert.Empty(t, mailer.sent)
}

func TestUpdateProfileEmailChange(t *testing.T) {
	svc, users, _, tokens, mailer := newUserFixture()
	ctx := context.Background()
	require.NoError(t, tokens.Create(ctx, "owner", "stale-token", time.Now().Add(time.Hour)))

	msg, err := svc.UpdateProfile(ctx, "owner", "Olive Owner", "olive.new@example.com")
	require.NoError(t, err)
	assert.Contains(t, msg, "verify your new email address")

	u := users.users["owner"]
	assert.Equal(t, "olive.new@example.com", u.Email)
	assert.Nil(t, u.EmailVerified, "email change clears verification")

	_, ok := tokens.tokens["stale-token"]
	assert.False(t, ok, "old tokens are invalidated")
	assert.Len(t, tokens.tokens, 1, "a fresh token is issued")
	require.Len(t, mailer.sent, 1)
	assert.True(t, strings.HasPrefix(mailer.sent[0], "olive.new@example.com|"))
}

func TestUpdateProfileErrors(t *testing.T) {
	svc, users, _, _, _ := newUserFixture()
	ctx := context.Background()

	_, err := svc.UpdateProfile(ctx, "owner", "  ", "")
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	_, err = svc.UpdateProfile(ctx, "owner", "Olive", "not-an-email")
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	_, err = svc.UpdateProfile(ctx, "owner", "Olive", "member1@example.com")
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err), "taken email")
	assert.Equal(t, "owner@example.com", users.users["owner"].Email, "failed update leaves the row alone")

	_, err = svc.UpdateProfile(ctx, "ghost", "Olive", "")
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

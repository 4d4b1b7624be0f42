// seed inserts development sample data for local testing. Run via ./scripts/seed.sh.
// Idempotent: skips inserts if the dev user (dev@example.com) already exists.
package main

import (
	"context"
	"log"
	"os"
	"time"

	botdomain "team-chat-platform/backend/internal/bot/domain"
	botrepo "team-chat-platform/backend/internal/bot/repository"
	channeldomain "team-chat-platform/backend/internal/channel/domain"
	channelrepo "team-chat-platform/backend/internal/channel/repository"
	"team-chat-platform/backend/internal/config"
	"team-chat-platform/backend/internal/db"
	guardraildomain "team-chat-platform/backend/internal/guardrail/domain"
	guardrailrepo "team-chat-platform/backend/internal/guardrail/repository"
	memdomain "team-chat-platform/backend/internal/membership/domain"
	membershiprepo "team-chat-platform/backend/internal/membership/repository"
	orgdomain "team-chat-platform/backend/internal/organization/domain"
	orgrepo "team-chat-platform/backend/internal/organization/repository"
	"team-chat-platform/backend/internal/security"
	userdomain "team-chat-platform/backend/internal/user/domain"
	userrepo "team-chat-platform/backend/internal/user/repository"
)

// devGuardrailRules blocks installing bots named "spammy" in the dev org, as a
// working example of a deny overlay for the OPA guard.
const devGuardrailRules = `package teamchat.guardrail

default allow = true

allow = false if {
	input.kind == "bot"
	input.name == "spammy"
}
`

const (
	devUserEmail     = "dev@example.com"
	devPassword      = "password123"
	devUserID        = "dev-user-001"
	devUser2ID       = "dev-user-002"
	devOrgID         = "dev-org-001"
	devMembershipID  = "dev-membership-001"
	devMembership2ID = "dev-membership-002"
	devChannelID     = "dev-channel-001"
	devBotID         = "dev-bot-001"
	devGuardrailID   = "dev-guardrail-001"
	memberEmail      = "member@example.com"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is not set; create a .env from .env.example or set DATABASE_URL")
	}

	conn, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer conn.Close()

	ctx := context.Background()
	users := userrepo.NewPostgresRepository(conn)

	existing, err := users.GetByEmail(ctx, devUserEmail)
	if err != nil {
		log.Fatalf("seed check: %v", err)
	}
	if existing != nil {
		log.Println("Seed already applied (dev@example.com exists). Skipping.")
		os.Exit(0)
	}

	hasher := security.NewHasher(cfg.BcryptCost)
	passwordHash, err := hasher.Hash([]byte(devPassword))
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	now := time.Now().UTC()

	orgs := orgrepo.NewPostgresRepository(conn)
	if err := orgs.CreateOrganization(ctx, &orgdomain.Org{
		ID:        devOrgID,
		Name:      "Dev Org",
		Status:    orgdomain.OrgStatusActive,
		CreatedAt: now,
	}); err != nil {
		log.Fatalf("create dev org: %v", err)
	}

	if err := users.Create(ctx, &userdomain.User{
		ID:           devUserID,
		Email:        devUserEmail,
		Name:         "Dev User",
		PasswordHash: passwordHash,
		Onboarded:    true,
		Status:       userdomain.UserStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}); err != nil {
		log.Fatalf("create dev user: %v", err)
	}
	if err := users.Create(ctx, &userdomain.User{
		ID:           devUser2ID,
		Email:        memberEmail,
		Name:         "Member User",
		PasswordHash: passwordHash,
		Onboarded:    true,
		Status:       userdomain.UserStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}); err != nil {
		log.Fatalf("create member user: %v", err)
	}

	memberships := membershiprepo.NewPostgresRepository(conn)
	if err := memberships.CreateMembership(ctx, &memdomain.Membership{
		ID:        devMembershipID,
		UserID:    devUserID,
		OrgID:     devOrgID,
		Role:      memdomain.RoleOwner,
		CreatedAt: now,
	}); err != nil {
		log.Fatalf("create owner membership: %v", err)
	}
	if err := memberships.CreateMembership(ctx, &memdomain.Membership{
		ID:        devMembership2ID,
		UserID:    devUser2ID,
		OrgID:     devOrgID,
		Role:      memdomain.RoleMember,
		CreatedAt: now,
	}); err != nil {
		log.Fatalf("create member membership: %v", err)
	}

	channels := channelrepo.NewPostgresRepository(conn)
	if err := channels.CreateChannel(ctx, &channeldomain.Channel{
		ID:        devChannelID,
		OrgID:     devOrgID,
		Name:      "general",
		Type:      channeldomain.ChannelTypePublic,
		CreatedBy: devUserID,
		CreatedAt: now,
	}); err != nil {
		log.Fatalf("create channel: %v", err)
	}

	bots := botrepo.NewPostgresRepository(conn)
	if err := bots.CreateBot(ctx, &botdomain.Bot{
		ID:          devBotID,
		OrgID:       devOrgID,
		Name:        "standup-bot",
		Description: "Posts the daily standup reminder",
		CreatedBy:   devUserID,
		CreatedAt:   now,
	}); err != nil {
		log.Fatalf("create bot: %v", err)
	}

	guardrails := guardrailrepo.NewPostgresRepository(conn)
	if err := guardrails.CreateRule(ctx, &guardraildomain.Rule{
		ID:        devGuardrailID,
		OrgID:     devOrgID,
		Rules:     devGuardrailRules,
		Enabled:   true,
		CreatedAt: now,
	}); err != nil {
		log.Fatalf("create guardrail rule: %v", err)
	}

	log.Printf("Seed complete: org %s, users %s / %s (password %q), channel #general", devOrgID, devUserEmail, memberEmail, devPassword)
}

package loyalty

import (
	"github.com/limelight-tw/loyalty/loyalty/database"
	"github.com/limelight-tw/loyalty/loyalty/database/repositories"
	"github.com/limelight-tw/loyalty/loyalty/history"
	"github.com/limelight-tw/loyalty/loyalty/identity"
	"github.com/limelight-tw/loyalty/loyalty/progression"
	"github.com/limelight-tw/loyalty/loyalty/rewards"
	"github.com/limelight-tw/loyalty/loyalty/services"
)

func New(cfg Config, version string, commit string) *App {
	return &App{
		Cfg:     cfg,
		Version: version,
		Commit:  commit,
	}
}

// App holds the wired application: database, repositories and the services
// built on top of them. main assembles it once at startup.
type App struct {
	Cfg     Config
	Version string
	Commit  string

	DB *database.DB

	MemberRepository        repositories.MemberRepository
	ScriptRepository        repositories.ScriptRepository
	SessionRepository       repositories.SessionRepository
	ParticipationRepository repositories.ParticipationRepository
	CouponRepository        repositories.CouponRepository

	Resolver       *identity.Resolver
	Guard          *progression.Guard
	Ledger         *progression.Service
	Issuer         *rewards.Issuer
	ProfileService *rewards.ProfileService
	Projector      *history.Projector
	SpacesService  *services.SpacesService
}

// SetupServices wires repositories and services over the connected database.
func (a *App) SetupServices(db *database.DB) {
	a.DB = db

	bunDB := db.BunDB()
	a.MemberRepository = repositories.NewMemberRepository(bunDB)
	a.ScriptRepository = repositories.NewScriptRepository(bunDB)
	a.SessionRepository = repositories.NewSessionRepository(bunDB)
	a.ParticipationRepository = repositories.NewParticipationRepository(bunDB)
	a.CouponRepository = repositories.NewCouponRepository(bunDB)

	txm := database.NewTransactionManager(bunDB)

	a.Issuer = rewards.NewIssuer(a.CouponRepository)
	a.Resolver = identity.NewResolver(a.MemberRepository)
	a.Guard = progression.NewGuard(a.MemberRepository)
	a.Ledger = progression.NewService(
		a.SessionRepository,
		a.ParticipationRepository,
		a.MemberRepository,
		a.ScriptRepository,
		txm,
		a.Issuer,
	)
	a.ProfileService = rewards.NewProfileService(a.MemberRepository, a.Issuer)

	// SpacesService is optional; a nil interface keeps the projector on its
	// stored-URL-or-placeholder path.
	var covers history.CoverResolver
	if a.SpacesService != nil {
		covers = a.SpacesService
	}
	a.Projector = history.NewProjector(covers)
}

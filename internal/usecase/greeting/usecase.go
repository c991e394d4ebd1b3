package greeting

import (
	"context"
	"runtime"
	"time"

	"merhaba-api/internal/domain/greeting"
	"merhaba-api/internal/domain/visit"
	"merhaba-api/pkg/id"

	"go.uber.org/zap"
)

type Options struct {
	// Now defaults to time.Now.
	Now func() time.Time
	// Location defaults to time.Local.
	Location *time.Location
	Logger   *zap.Logger

	Recorders     []visit.Recorder
	RecordTimeout time.Duration
}

type Usecase struct {
	now       func() time.Time
	loc       *time.Location
	log       *zap.Logger
	recorders []visit.Recorder
	timeout   time.Duration
}

func NewUsecase(opts Options) *Usecase {
	u := &Usecase{
		now:       opts.Now,
		loc:       opts.Location,
		log:       opts.Logger,
		recorders: opts.Recorders,
		timeout:   opts.RecordTimeout,
	}
	if u.now == nil {
		u.now = time.Now
	}
	if u.loc == nil {
		u.loc = time.Local
	}
	if u.log == nil {
		u.log = zap.NewNop()
	}
	if u.timeout <= 0 {
		u.timeout = 500 * time.Millisecond
	}
	return u
}

// Timestamp reads the clock once and formats it with greeting.TimeLayout.
func (u *Usecase) Timestamp() string {
	return u.now().In(u.loc).Format(greeting.TimeLayout)
}

func (u *Usecase) Index() string { return greeting.IndexText }

// Hello greets name, falling back to greeting.DefaultName when it is empty.
func (u *Usecase) Hello(ctx context.Context, name string) greeting.Message {
	if name == "" {
		name = greeting.DefaultName
	}
	msg := greeting.Message{
		Message: "Merhaba, " + name + "!",
		Time:    u.Timestamp(),
		Status:  greeting.StatusSuccess,
	}
	u.record(ctx, visit.RouteHelloQuery, name)
	return msg
}

func (u *Usecase) HelloPath(ctx context.Context, name string) (greeting.Message, error) {
	if name == "" {
		return greeting.Message{}, greeting.ErrEmptyName
	}
	msg := greeting.Message{
		Message: "Merhaba, " + name + "! (Path variable ile)",
		Time:    u.Timestamp(),
		Status:  greeting.StatusSuccess,
	}
	u.record(ctx, visit.RouteHelloPath, name)
	return msg, nil
}

func (u *Usecase) Info(_ context.Context) greeting.Info {
	return greeting.Info{
		Application: greeting.AppName,
		Version:     greeting.AppVersion,
		Description: greeting.AppDescription,
		Runtime:     runtime.Version(),
		Time:        u.Timestamp(),
	}
}

func (u *Usecase) Health(_ context.Context) greeting.Health {
	return greeting.Health{
		Status:  greeting.StatusHealthy,
		Message: greeting.HealthMessage,
		Time:    u.Timestamp(),
	}
}

// record hands the visit to every recorder. Failures are logged only; the
// greeting has already been built and is returned regardless.
func (u *Usecase) record(ctx context.Context, route visit.Route, name string) {
	if len(u.recorders) == 0 {
		return
	}
	v := &visit.Visit{
		VisitID:  id.NewID32(),
		Route:    route,
		Name:     name,
		ServedAt: u.now().UTC(),
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), u.timeout)
	defer cancel()
	for _, r := range u.recorders {
		if err := r.Record(ctx, v); err != nil {
			u.log.Warn("visit record failed",
				zap.String("route", string(route)),
				zap.String("visit_id", v.VisitID),
				zap.Error(err),
			)
		}
	}
}

package router

import (
	"github.com/brightsmile/clinic-api/internal/application"
	"github.com/brightsmile/clinic-api/internal/container"
	"github.com/brightsmile/clinic-api/internal/infrastructure/mongodb"
	handlers "github.com/brightsmile/clinic-api/internal/interface/http"
	"github.com/brightsmile/clinic-api/internal/router/modules"
)

func buildPatientModule() *modules.PatientModule {
	patients := mongodb.NewPatientRepository(container.GetMongo())
	dentists := mongodb.NewDentistRepository(container.GetMongo())
	svc := application.NewPatientService(
		patients,
		dentists,
		container.GetLogger(),
		container.GetES(),
		container.GetConfig().ESPatientsIndex,
	)
	return modules.NewPatientModule(handlers.NewPatientHandler(svc, container.GetLogger()))
}

func buildAccountModule() *modules.AccountModule {
	users := mongodb.NewUserRepository(container.GetMongo())
	svc := application.NewAccountService(
		users,
		container.GetJWT(),
		container.GetRabbitPub(),
		container.GetLogger(),
		container.GetConfig().MailSendEnabled,
	)
	return modules.NewAccountModule(handlers.NewAccountHandler(svc, container.GetLogger()))
}

// InitModules wires up all feature modules with the router registry.
// Called once during startup after the container singletons are set.
func InitModules(r *Registry) {
	r.Add(buildPatientModule())
	r.Add(buildAccountModule())
	r.Add(modules.NewProfileModule(handlers.NewProfileHandler(), container.GetJWT()))
}

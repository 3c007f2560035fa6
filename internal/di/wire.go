//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"gogram/internal/common"
	"gogram/internal/config"
	"gogram/internal/dbmongo"
	"gogram/internal/dbmysql"
	"gogram/internal/media"
	"gogram/internal/photo"
	"gogram/internal/user"
)

// InitializeApplication builds the full application graph. Wire generates
// the real body in wire_gen.go.
func InitializeApplication() (*Application, func(), error) {
	wire.Build(
		config.LoadConfig,
		dbmysql.NewMySQL,
		provideMongo,
		dbmongo.NewMediaStorage,
		common.NewJWTManager,

		user.NewUserRepository,
		user.NewUserService,
		user.NewHandler,
		provideUserMediaUploader,

		photo.NewPhotoRepository,
		photo.NewPhotoService,
		photo.NewPhotoHandlers,
		providePhotoStore,
		provideMediaStore,
		provideUserDirectory,
		providePhotoUsecase,
		providePhotoMediaUploader,

		media.NewHTTPServer,

		wire.Struct(new(Application), "*"),
	)
	return &Application{}, nil, nil
}

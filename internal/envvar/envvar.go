package envvar

const (
	// VoxcloneEnv is the environment variable used to determine the environment
	VoxcloneEnv = "VOXCLONE_ENV"

	// VoxcloneServerHTTPPort is the environment variable used to determine the HTTP port
	VoxcloneServerHTTPPort = "VOXCLONE_SERVER_HTTP_PORT"

	// VoxcloneServerGRPCPort is the environment variable used to determine the gRPC port
	VoxcloneServerGRPCPort = "VOXCLONE_SERVER_GRPC_PORT"

	// VoxcloneModelsPath is the environment variable used to override the models directory
	VoxcloneModelsPath = "VOXCLONE_MODELS_PATH"
)

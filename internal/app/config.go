package app

import (
	"strings"
	"time"

	"github.com/yungbote/educraft-backend/internal/ai"
	"github.com/yungbote/educraft-backend/internal/logger"
	"github.com/yungbote/educraft-backend/internal/utils"
)

type Config struct {
	Port                 string
	JWTSecretKey         string
	AccessTokenTTL       time.Duration
	ModelType            ai.ModelType
	GenerateTimeout      time.Duration
	GenerationRateLimit  int
	GenerationRateWindow time.Duration
	AllowOrigins         []string
}

func LoadConfig(log *logger.Logger) Config {
	port := utils.GetEnv("PORT", "8080", log)
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	accessTokenTTLSeconds := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)
	modelType := ai.ModelType(strings.TrimSpace(utils.GetEnv("AI_MODEL_TYPE", string(ai.ModelTypeGeminiFlash), log)))
	generateTimeoutSeconds := utils.GetEnvAsInt("GENERATE_TIMEOUT", 60, log)
	rateLimit := utils.GetEnvAsInt("GENERATION_RATE_LIMIT", 10, log)
	rateWindowSeconds := utils.GetEnvAsInt("GENERATION_RATE_WINDOW", 60, log)

	var origins []string
	if raw := strings.TrimSpace(utils.GetEnv("CORS_ALLOW_ORIGINS", "", log)); raw != "" {
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	return Config{
		Port:                 port,
		JWTSecretKey:         jwtSecretKey,
		AccessTokenTTL:       time.Duration(accessTokenTTLSeconds) * time.Second,
		ModelType:            modelType,
		GenerateTimeout:      time.Duration(generateTimeoutSeconds) * time.Second,
		GenerationRateLimit:  rateLimit,
		GenerationRateWindow: time.Duration(rateWindowSeconds) * time.Second,
		AllowOrigins:         origins,
	}
}

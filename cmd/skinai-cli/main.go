package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/skinai/skinai-backend/internal/config"
	"github.com/skinai/skinai-backend/internal/core"
	"github.com/skinai/skinai-backend/internal/factory"
	"github.com/skinai/skinai-backend/internal/logging"
	"go.uber.org/zap"
)

var (
	// Mode flags
	mode = flag.String("mode", "predict", "Operation (predict, routine, recommend)")

	// Artifact flags
	skinModelPath       = flag.String("skin-model", "modelsoutput/skin_type.txt", "Path to the skin type model")
	encodersPath        = flag.String("encoders", "modelsoutput/label_encoders.json", "Path to the label encoders")
	featuresPath        = flag.String("features", "modelsoutput/feature_columns.json", "Path to the skin feature columns")
	routineDir          = flag.String("routine-dir", "modelsoutput/routine", "Directory holding the routine slot models")
	routineFeaturesPath = flag.String("routine-features", "modelsoutput/routine/feature_columns.json", "Path to the routine feature columns")
	catalogPath         = flag.String("catalog", "data/products.csv", "Path to the product catalog CSV")

	// Recommendation flags
	products  = flag.String("products", "", "Comma-separated product types to recommend")
	allergies = flag.String("allergies", "", "Comma-separated allergens to avoid")
	brand     = flag.String("brand", "", "Preferred brand")

	// Input flags
	inputFile = flag.String("file", "", "Input profile JSON file (use stdin if not specified)")
	verbose   = flag.Bool("verbose", false, "Enable verbose logging")
	jsonLog   = flag.Bool("json-log", false, "Output logs in JSON format")
)

func main() {
	flag.Parse()

	// Initialize logger
	logger, err := logging.InitConsoleLogger(*verbose, *jsonLog)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cfg := createConfigFromFlags()

	if err := runOnce(cfg, logger); err != nil {
		logger.Fatal("Command failed", zap.Error(err))
	}
}

// createConfigFromFlags builds a configuration from the command line flags
func createConfigFromFlags() *config.Config {
	v := config.NewEmptyViper()
	v.Set("models.skin_type_path", *skinModelPath)
	v.Set("models.label_encoders_path", *encodersPath)
	v.Set("models.feature_columns_path", *featuresPath)
	v.Set("models.routine_dir", *routineDir)
	v.Set("models.routine_feature_columns_path", *routineFeaturesPath)
	v.Set("catalog.path", *catalogPath)
	return config.NewFromViper(v)
}

func runOnce(cfg *config.Config, logger *zap.Logger) error {
	models := factory.NewModelFactory(cfg, logger)
	encoders := models.CreateLabelEncoders()
	spec := models.CreateFeatureSpec()
	encoder := core.NewFeatureEncoder(spec, encoders, logger)
	skinType := core.NewSkinTypeService(models.CreateSkinTypeModel(), encoder, encoders, logger)

	switch *mode {
	case "predict":
		attrs, err := readAttributes()
		if err != nil {
			return err
		}
		pred, err := skinType.Predict(attrs)
		if err != nil {
			return err
		}
		return printJSON(pred)

	case "routine":
		attrs, err := readAttributes()
		if err != nil {
			return err
		}
		routine := core.NewRoutineService(models.CreateRoutineModel(), skinType, logger)
		result, err := routine.Analyze(attrs)
		if err != nil {
			return err
		}
		return printJSON(result)

	case "recommend":
		catalog := factory.NewCatalogFactory(cfg, logger).CreateCatalog()
		recommender := core.NewRecommenderService(catalog, logger)
		result, err := recommender.Recommend(splitList(*products), splitList(*allergies), *brand)
		if err != nil {
			return err
		}
		return printJSON(result)

	default:
		return fmt.Errorf("unsupported mode: %s", *mode)
	}
}

// readAttributes reads a profile attribute mapping from the input file or
// stdin. An empty input means "use all defaults".
func readAttributes() (core.Attributes, error) {
	var reader io.Reader = os.Stdin
	if *inputFile != "" {
		f, err := os.Open(*inputFile)
		if err != nil {
			return nil, fmt.Errorf("failed to open input file: %w", err)
		}
		defer f.Close()
		reader = f
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	attrs := core.Attributes{}
	if len(strings.TrimSpace(string(data))) == 0 {
		return attrs, nil
	}
	if err := json.Unmarshal(data, &attrs); err != nil {
		return nil, fmt.Errorf("failed to parse profile JSON: %w", err)
	}
	return attrs, nil
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

// meshtool is a CLI utility for inspecting and baking model files.
//
// It loads an OBJ or glTF model, computes per-vertex tangent spaces,
// reports mesh statistics, and optionally writes a baked binary blob
// ready for upload to a vertex buffer.
package main

import (
	"flag"
	"fmt"
	gomath "math"
	"os"

	"go.uber.org/zap"

	"github.com/Sycrosity/unknown-engine/internal/assets"
	"github.com/Sycrosity/unknown-engine/internal/config"
	"github.com/Sycrosity/unknown-engine/internal/engine/camera"
	"github.com/Sycrosity/unknown-engine/internal/engine/geometry"
	"github.com/Sycrosity/unknown-engine/internal/logger"
	"github.com/Sycrosity/unknown-engine/pkg/math"
)

var flagOutput = flag.String("o", "", "Write baked mesh blob to this path")

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: meshtool [options] <model.obj|model.gltf>")
		flag.PrintDefaults()
		os.Exit(1)
	}

	lib := assets.NewLibrary(cfg.Assets.ResDir)
	model, err := lib.LoadModel(flag.Arg(0))
	if err != nil {
		logger.Error("Model load failed", zap.String("path", flag.Arg(0)), zap.Error(err))
		os.Exit(1)
	}

	logger.Info("Model loaded",
		zap.String("name", model.Name),
		zap.Int("meshes", len(model.Meshes)),
		zap.Int("materials", len(model.Materials)),
	)

	bounds := reportMeshes(model)

	logger.Info("Model bounds",
		zap.Any("min", bounds.Min),
		zap.Any("max", bounds.Max),
		zap.Any("center", bounds.Center()),
	)

	previewCamera(cfg, bounds)

	if *flagOutput != "" {
		if err := bake(*flagOutput, model.Meshes); err != nil {
			logger.Error("Bake failed", zap.String("path", *flagOutput), zap.Error(err))
			os.Exit(1)
		}
		logger.Info("Baked mesh blob written", zap.String("path", *flagOutput))
	}
}

// reportMeshes logs per-mesh statistics and returns the union of all
// mesh bounds.
func reportMeshes(model *assets.Model) geometry.Bounds {
	var bounds geometry.Bounds
	for i, mesh := range model.Meshes {
		fields := []zap.Field{
			zap.String("name", mesh.Name),
			zap.Int("vertices", len(mesh.Vertices)),
			zap.Int("triangles", len(mesh.Indices)/3),
		}
		if n := mesh.NonFiniteTangents(); n > 0 {
			fields = append(fields, zap.Int("non_finite_tangents", n))
		}
		logger.Info("Mesh", fields...)

		if i == 0 {
			bounds = mesh.Bounds
		} else {
			bounds = bounds.Union(mesh.Bounds)
		}
	}
	return bounds
}

// previewCamera frames the model with a camera placed back along -X and
// logs the resulting view-projection, as a sanity check of the values a
// renderer would upload.
func previewCamera(cfg *config.Config, bounds geometry.Bounds) {
	size := bounds.Size()
	radius := size.Length() / 2
	if radius == 0 {
		radius = 1
	}

	fov := cfg.Camera.FovDegrees * gomath.Pi / 180
	distance := radius / float32(gomath.Tan(float64(fov/2)))

	center := bounds.Center()
	eye := math.Vec3{X: center.X - distance - radius, Y: center.Y, Z: center.Z}
	cam := camera.New(eye, 0, 0)

	proj := camera.NewProjection(
		uint32(cfg.Display.Width), uint32(cfg.Display.Height),
		fov, cfg.Camera.Znear, cfg.Camera.Zfar,
	)

	uniform := camera.NewUniform()
	uniform.Update(cam, proj)

	logger.Debug("Preview camera",
		zap.Any("position", cam.Position),
		zap.Float32("distance", distance),
		zap.Any("view_proj", uniform.ViewProj),
	)
}

// bake writes all meshes to a single binary blob.
func bake(path string, meshes []*geometry.Mesh) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}

	if err := geometry.Encode(f, meshes); err != nil {
		f.Close()
		return fmt.Errorf("encoding meshes: %w", err)
	}
	return f.Close()
}

/*
This is an example of application that will use the
math package to test things out: it builds a camera
view-projection from a TOML scene description, extracts the
frustum, culls randomly placed boxes and spheres, then casts
a picking ray through whatever survived. The scene file is
watched so edits re-run the pass on save.
*/
package main

import (
	"errors"
	"flag"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	toml "github.com/pelletier/go-toml/v2"
	"golang.org/x/exp/rand"

	"github.com/spaghettifunk/prisma/core"
	"github.com/spaghettifunk/prisma/math"
)

type cameraConfig struct {
	Position   [3]float32 `toml:"position"`
	Target     [3]float32 `toml:"target"`
	FovDegrees float32    `toml:"fov_degrees"`
	Aspect     float32    `toml:"aspect"`
	Near       float32    `toml:"near"`
	Far        float32    `toml:"far"`
}

type sceneConfig struct {
	Camera  cameraConfig `toml:"camera"`
	Boxes   int          `toml:"boxes"`
	Spheres int          `toml:"spheres"`
	Extent  float32      `toml:"extent"`
	Seed    uint64       `toml:"seed"`
}

func defaultConfig() sceneConfig {
	return sceneConfig{
		Camera: cameraConfig{
			Position:   [3]float32{0, 5, 20},
			Target:     [3]float32{0, 0, 0},
			FovDegrees: 60,
			Aspect:     16.0 / 9.0,
			Near:       0.1,
			Far:        100,
		},
		Boxes:   64,
		Spheres: 32,
		Extent:  50,
		Seed:    42,
	}
}

func loadConfig(path string) (sceneConfig, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		core.LogWarn("no scene file at %s, using defaults", path)
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

type sceneBox struct {
	ID     uuid.UUID
	Bounds math.AABBf
}

type sceneSphere struct {
	ID     uuid.UUID
	Bounds math.Spheref
}

func toVec3(v [3]float32) math.Vec3f {
	return math.NewVec3(v[0], v[1], v[2])
}

func buildScene(cfg sceneConfig) ([]sceneBox, []sceneSphere) {
	rng := rand.New(rand.NewSource(cfg.Seed))
	point := func() math.Vec3f {
		return math.NewVec3(
			(rng.Float32()*2-1)*cfg.Extent,
			(rng.Float32()*2-1)*cfg.Extent,
			(rng.Float32()*2-1)*cfg.Extent,
		)
	}

	boxes := make([]sceneBox, cfg.Boxes)
	for i := range boxes {
		center := point()
		half := math.NewVec3One[float32]().MulScalar(0.5 + rng.Float32()*2)
		boxes[i] = sceneBox{
			ID:     uuid.New(),
			Bounds: math.NewAABB(center.Sub(half), center.Add(half)),
		}
	}

	spheres := make([]sceneSphere, cfg.Spheres)
	for i := range spheres {
		spheres[i] = sceneSphere{
			ID:     uuid.New(),
			Bounds: math.NewSphere(point(), 0.5+rng.Float32()*2),
		}
	}
	return boxes, spheres
}

func runPass(cfg sceneConfig) {
	cam := cfg.Camera
	eye := toVec3(cam.Position)
	target := toVec3(cam.Target)

	projection := math.NewMat4Perspective(math.DegToRad(cam.FovDegrees), cam.Aspect, cam.Near, cam.Far)
	view := math.NewMat4LookAt(eye, target, math.NewVec3Up[float32]())
	frustum := math.NewFrustum(projection.Mul(view))

	boxes, spheres := buildScene(cfg)

	clock := core.NewClock()
	clock.Start()

	visible := make([]sceneBox, 0, len(boxes))
	for _, box := range boxes {
		if frustum.IntersectsAABB(box.Bounds) {
			visible = append(visible, box)
		}
	}

	inView := 0
	for _, sphere := range spheres {
		if frustum.ContainsPoint(sphere.Bounds.Center) {
			inView++
		}
	}

	clock.Update()
	core.LogInfo("culled %d/%d boxes, %d/%d sphere centers in view (%s)",
		len(boxes)-len(visible), len(boxes), inView, len(spheres), clock.Elapsed())

	pick, err := math.NewRay(eye, target.Sub(eye))
	if err != nil {
		core.LogError("picking ray: %v", err)
		return
	}

	bestT := cam.Far
	var bestID uuid.UUID
	hit := false
	for _, box := range visible {
		// The slab test reports intervals behind the origin too; a pick
		// only cares about hits in front of the camera.
		if tMin, _, ok := box.Bounds.IntersectsRay(pick); ok && tMin >= 0 && tMin < bestT {
			bestT, bestID, hit = tMin, box.ID, true
		}
	}
	for _, sphere := range spheres {
		if t, ok := sphere.Bounds.IntersectsRay(pick); ok && t < bestT {
			bestT, bestID, hit = t, sphere.ID, true
		}
	}

	if hit {
		core.LogInfo("pick ray hit %s at t=%.3f, point %s", bestID, bestT, pick.PointAt(bestT))
	} else {
		core.LogInfo("pick ray hit nothing within the far plane")
	}
}

func main() {
	configPath := flag.String("config", "scene.toml", "path to the scene description")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		core.LogFatal("loading %s: %v", *configPath, err)
	}
	runPass(cfg)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		core.LogFatal("watcher: %v", err)
	}
	defer watcher.Close()
	// Watch the directory rather than the file itself so editors that
	// replace the file on save keep triggering events.
	if err := watcher.Add(filepath.Dir(*configPath)); err != nil {
		core.LogFatal("watching %s: %v", filepath.Dir(*configPath), err)
	}

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)

	core.LogInfo("watching %s for changes, ctrl-c to exit", *configPath)
	for {
		select {
		case <-sigCh:
			core.LogInfo("shutting down")
			return
		case event := <-watcher.Events:
			if filepath.Clean(event.Name) != filepath.Clean(*configPath) || !event.Op.Has(fsnotify.Write) {
				continue
			}
			cfg, err := loadConfig(*configPath)
			if err != nil {
				core.LogError("reloading %s: %v", *configPath, err)
				continue
			}
			runPass(cfg)
		case err := <-watcher.Errors:
			core.LogError("watcher: %v", err)
		}
	}
}

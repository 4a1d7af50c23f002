package app

import (
	"fmt"
	"image/color"

	"go.uber.org/zap"

	"github.com/Faultbox/orbitview/internal/assets"
	"github.com/Faultbox/orbitview/internal/config"
	"github.com/Faultbox/orbitview/internal/engine/lighting"
	"github.com/Faultbox/orbitview/internal/engine/model"
	"github.com/Faultbox/orbitview/internal/engine/renderer"
	"github.com/Faultbox/orbitview/internal/engine/shader"
	"github.com/Faultbox/orbitview/internal/engine/shader/shaders"
	"github.com/Faultbox/orbitview/internal/engine/texture"
	"github.com/Faultbox/orbitview/pkg/math"
)

// scene holds the meshes and GPU resources drawn every frame.
type scene struct {
	body   *model.Mesh // rest pose, re-placed by the solver each frame
	sphere *model.Mesh
	ground *model.Mesh

	bodyTexture   uint32
	groundTexture uint32

	meshProgram   *shader.Program
	groundProgram *shader.Program
}

var white = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// loadScene builds meshes, textures and programs. Missing meshes are fatal;
// textures and shader overrides fall back to built-ins with a warning.
func loadScene(m *assets.Manager, cfg config.AssetsConfig, planeHeight float32, log *zap.Logger) (*scene, error) {
	s := &scene{}

	var err error
	s.body, err = model.LoadOBJ(m, cfg.BodyMesh, model.BuildOptions{NormalizePositions: true})
	if err != nil {
		return nil, err
	}
	if cfg.SphereMesh != "" {
		sphere, err := model.LoadOBJ(m, cfg.SphereMesh, model.BuildOptions{NormalizePositions: true})
		if err != nil {
			return nil, err
		}
		s.sphere = sphere.Offset(math.Vec3{Y: cfg.SphereOffset})
	} else {
		s.sphere = &model.Mesh{}
	}
	s.ground = model.Plane(cfg.GroundSize, planeHeight, cfg.GroundRepeat)

	log.Info("meshes loaded",
		zap.String("body", cfg.BodyMesh),
		zap.Int("body_vertices", len(s.body.Vertices)),
		zap.Int("sphere_vertices", len(s.sphere.Vertices)),
	)

	s.bodyTexture = uploadOrWhite(m, cfg.BodyTexture, texture.WrapMirroredRepeat, log)
	s.groundTexture = uploadOrWhite(m, cfg.GroundTexture, texture.WrapRepeat, log)

	s.meshProgram, err = buildProgram(m, cfg.VertexShader, cfg.FragmentShader, shaders.MeshFragment, log)
	if err != nil {
		s.release()
		return nil, err
	}
	s.groundProgram, err = buildProgram(m, cfg.VertexShader, cfg.GroundShader, shaders.GroundFragment, log)
	if err != nil {
		s.release()
		return nil, err
	}

	return s, nil
}

// applySun sets the lighting uniforms, which persist across draws.
func (s *scene) applySun(sun lighting.Sun) {
	s.meshProgram.Use()
	s.meshProgram.SetVec3("lightDir", sun.Direction())
	s.meshProgram.SetFloat("ambient", sun.Ambient)
	s.meshProgram.SetFloat("diffuse", sun.Diffuse())
}

func (s *scene) release() {
	if s.meshProgram != nil {
		s.meshProgram.Delete()
	}
	if s.groundProgram != nil {
		s.groundProgram.Delete()
	}
	renderer.DeleteTexture(s.bodyTexture)
	renderer.DeleteTexture(s.groundTexture)
	s.bodyTexture, s.groundTexture = 0, 0
}

func uploadOrWhite(m *assets.Manager, name string, wrap texture.Wrap, log *zap.Logger) uint32 {
	img, err := texture.Load(m, name)
	if err != nil {
		log.Warn("using white texture", zap.String("texture", name), zap.Error(err))
		img = texture.Solid(white)
	}
	return renderer.UploadTexture(img, wrap)
}

// buildProgram compiles the configured sources, retrying with the built-ins
// when an override is unreadable or does not compile.
func buildProgram(m *assets.Manager, vertPath, fragPath, fragBuiltin string, log *zap.Logger) (*shader.Program, error) {
	vert, err := shaders.Resolve(m, vertPath, shaders.MeshVertex)
	if err != nil {
		log.Warn("using built-in vertex shader", zap.Error(err))
	}
	frag, err := shaders.Resolve(m, fragPath, fragBuiltin)
	if err != nil {
		log.Warn("using built-in fragment shader", zap.Error(err))
	}

	prog, err := shader.New(vert, frag)
	if err == nil {
		return prog, nil
	}
	if vert == shaders.MeshVertex && frag == fragBuiltin {
		return nil, fmt.Errorf("built-in shaders: %w", err)
	}

	log.Warn("shader override failed to compile, using built-ins", zap.Error(err))
	prog, err = shader.New(shaders.MeshVertex, fragBuiltin)
	if err != nil {
		return nil, fmt.Errorf("built-in shaders: %w", err)
	}
	return prog, nil
}

package renderer

import (
	"errors"
	"fmt"

	"github.com/Carmen-Shannon/oxy-orrery/common"
	"github.com/Carmen-Shannon/oxy-orrery/engine/camera"
	"github.com/Carmen-Shannon/oxy-orrery/engine/game_object"
	"github.com/Carmen-Shannon/oxy-orrery/engine/light"
	"github.com/Carmen-Shannon/oxy-orrery/engine/model"
	"github.com/Carmen-Shannon/oxy-orrery/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/oxy-orrery/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-orrery/engine/scene"
)

// objectBinding is the GPU state of one game object.
type objectBinding struct {
	provider bind_group_provider.BindGroupProvider

	// texture is the texture currently resident in the provider's texture binding,
	// nil while the white placeholder is bound.
	texture *common.Texture
}

type drawItem struct {
	pipelineKey string
	mesh        bind_group_provider.BindGroupProvider
	frame       bind_group_provider.BindGroupProvider
	object      bind_group_provider.BindGroupProvider
}

// sceneRenderer is the implementation of the SceneRenderer interface.
type sceneRenderer struct {
	r Renderer

	frames  map[string]bind_group_provider.BindGroupProvider
	meshes  map[string]bind_group_provider.BindGroupProvider
	objects map[uint64]*objectBinding

	// culled counts objects skipped by frustum culling in the last Render
	culled int
}

// SceneRenderer draws scenes through a Renderer. It lazily creates GPU resources for every
// model and object it meets while walking a scene, uploads textures as soon as they finish
// loading, and draws opaque geometry, then points, then transparent geometry.
//
// SceneRenderer is not safe for concurrent use; call it from the frame loop only.
type SceneRenderer interface {
	// Renderer returns the underlying Renderer.
	//
	// Returns:
	//   - Renderer: the renderer
	Renderer() Renderer

	// Render draws every active scene into one frame. The first active scene supplies the
	// clear color. Inactive scenes are skipped; with none active no frame is drawn.
	//
	// Parameters:
	//   - scenes: the scenes to draw
	//
	// Returns:
	//   - error: an error if GPU resources could not be created or the frame could not begin
	Render(scenes ...scene.Scene) error

	// Resize reconfigures the swapchain and updates the aspect ratio of each scene camera.
	//
	// Parameters:
	//   - width: the new width in pixels
	//   - height: the new height in pixels
	//   - scenes: the scenes whose cameras follow the surface
	Resize(width, height int, scenes ...scene.Scene)

	// Culled returns how many objects the last Render skipped because their bounding
	// sphere was outside the camera frustum.
	Culled() int

	// Release frees every provider created by this SceneRenderer. The Renderer itself is not released.
	Release()
}

var _ SceneRenderer = &sceneRenderer{}

// NewSceneRenderer registers the mesh pipelines on r and returns a SceneRenderer drawing through it.
//
// Parameters:
//   - r: the renderer
//
// Returns:
//   - SceneRenderer: the scene renderer
//   - error: an error if a pipeline could not be registered
func NewSceneRenderer(r Renderer) (SceneRenderer, error) {
	if r == nil {
		return nil, errors.New("renderer is required")
	}
	if err := r.RegisterPipelines(MeshPipelines()...); err != nil {
		return nil, err
	}
	return &sceneRenderer{
		r:       r,
		frames:  make(map[string]bind_group_provider.BindGroupProvider),
		meshes:  make(map[string]bind_group_provider.BindGroupProvider),
		objects: make(map[uint64]*objectBinding),
	}, nil
}

func (s *sceneRenderer) Renderer() Renderer {
	return s.r
}

func (s *sceneRenderer) Render(scenes ...scene.Scene) error {
	var active []scene.Scene
	for _, sc := range scenes {
		if sc != nil && sc.Active() {
			active = append(active, sc)
		}
	}
	if len(active) == 0 {
		return nil
	}

	s.culled = 0
	s.r.SetClearColor(active[0].ClearColor())

	var (
		writes                      []bind_group_provider.BufferWrite
		opaque, points, transparent []drawItem
	)
	for _, sc := range active {
		frame, err := s.frameProvider(sc.Name())
		if err != nil {
			return err
		}
		writes = append(writes, bind_group_provider.BufferWrite{
			Provider: frame,
			Binding:  0,
			Data:     FrameUniform(sc.Camera(), sc.Lights()),
		})

		var frustum *common.Frustum
		if cam := sc.Camera(); cam != nil {
			f := common.FrustumFromMatrix(cam.ViewProjectionMatrix())
			frustum = &f
		}

		var walkErr error
		sc.Walk(func(obj game_object.GameObject) {
			if walkErr != nil {
				return
			}
			m, mat := obj.Model(), obj.Material()
			if m == nil || mat == nil {
				return
			}
			world := obj.WorldMatrix()
			if frustum != nil && !frustum.IntersectsSphere(common.TransformPoint(world, [3]float32{}), m.BoundingRadius()*common.MaxScale(world)) {
				s.culled++
				return
			}

			mesh, err := s.meshProvider(m)
			if err != nil {
				walkErr = err
				return
			}
			binding, err := s.objectBinding(obj)
			if err != nil {
				walkErr = err
				return
			}
			if err := s.syncTexture(binding, mat.Texture()); err != nil {
				walkErr = err
				return
			}

			textured := binding.texture != nil && binding.texture == mat.Texture()
			writes = append(writes, bind_group_provider.BufferWrite{
				Provider: binding.provider,
				Binding:  BindingObjectUniform,
				Data:     ObjectUniform(world, material.Params(mat, textured)),
			})

			item := drawItem{pipelineKey: mat.PipelineKey(), mesh: mesh, frame: frame, object: binding.provider}
			switch item.pipelineKey {
			case material.PipelinePoints:
				points = append(points, item)
			case material.PipelineTransparent:
				transparent = append(transparent, item)
			default:
				opaque = append(opaque, item)
			}
		})
		if walkErr != nil {
			return walkErr
		}
	}

	s.r.WriteBuffers(writes)

	if err := s.r.BeginFrame(); err != nil {
		return err
	}
	for _, bucket := range [][]drawItem{opaque, points, transparent} {
		for _, item := range bucket {
			groups := []bind_group_provider.BindGroupProvider{item.frame, item.object}
			if err := s.r.DrawCall(item.pipelineKey, item.mesh, 1, groups); err != nil {
				s.r.EndFrame()
				s.r.Present()
				return err
			}
		}
	}
	s.r.EndFrame()
	s.r.Present()

	return nil
}

func (s *sceneRenderer) Resize(width, height int, scenes ...scene.Scene) {
	if width <= 0 || height <= 0 {
		return
	}
	s.r.Resize(width, height)
	for _, sc := range scenes {
		if cam := sc.Camera(); cam != nil {
			cam.SetAspect(float32(width) / float32(height))
		}
	}
}

func (s *sceneRenderer) Culled() int {
	return s.culled
}

func (s *sceneRenderer) Release() {
	for k, p := range s.frames {
		p.Release()
		delete(s.frames, k)
	}
	for k, p := range s.meshes {
		p.Release()
		delete(s.meshes, k)
	}
	for k, b := range s.objects {
		b.provider.Release()
		delete(s.objects, k)
	}
}

func (s *sceneRenderer) frameProvider(name string) (bind_group_provider.BindGroupProvider, error) {
	if p, ok := s.frames[name]; ok {
		return p, nil
	}
	p := bind_group_provider.NewBindGroupProvider("frame:" + name)
	if err := s.r.InitBindGroup(p, FrameLayout); err != nil {
		return nil, fmt.Errorf("failed to create frame bind group for scene %s: %w", name, err)
	}
	s.frames[name] = p
	return p, nil
}

func (s *sceneRenderer) meshProvider(m model.Model) (bind_group_provider.BindGroupProvider, error) {
	if p, ok := s.meshes[m.Key()]; ok {
		return p, nil
	}
	p := bind_group_provider.NewBindGroupProvider("mesh:" + m.Key())
	if err := s.r.InitMeshBuffers(p, m.VertexData(), m.IndexData(), len(m.Indices())); err != nil {
		return nil, fmt.Errorf("failed to upload mesh %s: %w", m.Key(), err)
	}
	s.meshes[m.Key()] = p
	return p, nil
}

func (s *sceneRenderer) objectBinding(obj game_object.GameObject) (*objectBinding, error) {
	if b, ok := s.objects[obj.ID()]; ok {
		return b, nil
	}

	p := bind_group_provider.NewBindGroupProvider(fmt.Sprintf("object:%s#%d", obj.Name(), obj.ID()))
	if err := s.r.InitTextureView(p, BindingObjectTexture, whitePixel); err != nil {
		return nil, err
	}
	if err := s.r.InitSampler(p, BindingObjectSampler, SamplerStagingData{}); err != nil {
		return nil, err
	}
	if err := s.r.InitBindGroup(p, ObjectLayout); err != nil {
		return nil, fmt.Errorf("failed to create bind group for %s: %w", obj.Name(), err)
	}

	b := &objectBinding{provider: p}
	s.objects[obj.ID()] = b
	return b, nil
}

// syncTexture uploads tex into the object's texture binding once it has decoded.
// Pending or failed textures leave the current binding untouched.
func (s *sceneRenderer) syncTexture(b *objectBinding, tex *common.Texture) error {
	if tex == nil || tex == b.texture || !tex.Ready() {
		return nil
	}

	pixels, w, h := tex.Pixels()
	if err := s.r.InitTextureView(b.provider, BindingObjectTexture, TextureStagingData{Pixels: pixels, Width: w, Height: h}); err != nil {
		return fmt.Errorf("failed to upload texture %s: %w", tex.Name, err)
	}
	b.provider.ReleaseBindGroup()
	if err := s.r.InitBindGroup(b.provider, ObjectLayout); err != nil {
		return err
	}
	b.texture = tex
	return nil
}

// FrameUniform packs the per-scene frame block: camera followed by lighting.
//
// Parameters:
//   - cam: the scene camera
//   - lights: the scene lights
//
// Returns:
//   - []byte: FrameUniformSize bytes
func FrameUniform(cam camera.Camera, lights []light.Light) []byte {
	buf := make([]byte, 0, FrameUniformSize)
	if cam != nil {
		cam.Update()
		cu := camera.Uniform(cam)
		buf = append(buf, cu.Marshal()...)
	} else {
		var cu camera.GPUCameraUniform
		buf = append(buf, make([]byte, cu.Size())...)
	}
	lu := light.Pack(lights)
	return append(buf, lu.Marshal()...)
}

// ObjectUniform packs the per-object block: world matrix followed by material parameters.
//
// Parameters:
//   - world: the object's world matrix
//   - params: the material parameters
//
// Returns:
//   - []byte: ObjectUniformSize bytes
func ObjectUniform(world common.Mat4, params material.GPUMaterialParams) []byte {
	buf := make([]byte, 0, ObjectUniformSize)
	buf = append(buf, common.SliceToBytes(world[:])...)
	return append(buf, params.Marshal()...)
}

package primitives

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Primitive names understood by Draw.
const (
	Cube     = "cube"
	Sphere   = "sphere"
	Cylinder = "cylinder"
	Cone     = "cone"
)

const (
	sphereRings    = 16
	sphereSlices   = 16
	cylinderSlices = 24
	coneSlices     = 32
)

// Light is a single directional light plus an ambient term.
type Light struct {
	Dir       [3]float32 // direction to the light
	Color     [3]float32
	Intensity float32
	Ambient   [4]float32
}

// DefaultLight is a dim grey ambient (0x404040 at half strength) and a white key light at 0.8 from (1,1,1).
func DefaultLight() Light {
	const amb = float32(0x40) / 255 * 0.5
	return Light{
		Dir:       [3]float32{1, 1, 1},
		Color:     [3]float32{1, 1, 1},
		Intensity: 0.8,
		Ambient:   [4]float32{amb, amb, amb, 1},
	}
}

type cached struct {
	mesh rl.Mesh
	mtl  rl.Material
	// offset moves the mesh so its centre sits at the draw position (raylib cylinders and cones start at y=0)
	offset [3]float32
}

// Registry maps primitive names to mesh+material. Meshes are created on first use
// so that GPU resources are allocated after the window/OpenGL context exists.
type Registry struct {
	cache   map[string]cached
	shader  rl.Shader
	loaded  bool
	viewPos [3]float32
	light   Light
}

// NewRegistry returns an empty registry lit by DefaultLight.
func NewRegistry() *Registry {
	return &Registry{
		cache: make(map[string]cached),
		light: DefaultLight(),
	}
}

// SetView sets the camera position for this frame. Call once per frame before drawing.
func (r *Registry) SetView(viewPos [3]float32) {
	r.viewPos = viewPos
}

// SetLight replaces the scene light.
func (r *Registry) SetLight(l Light) {
	r.light = l
}

func (r *Registry) litShader() rl.Shader {
	if !r.loaded {
		r.shader = rl.LoadShaderFromMemory(litVS, litFS)
		r.loaded = true
	}
	return r.shader
}

func (r *Registry) ensure(name string) (cached, bool) {
	if c, ok := r.cache[name]; ok {
		return c, true
	}
	var c cached
	switch name {
	case Cube:
		c.mesh = rl.GenMeshCube(1, 1, 1)
	case Sphere:
		// Radius 0.5 so the unit mesh matches the unit cube.
		c.mesh = rl.GenMeshSphere(0.5, sphereRings, sphereSlices)
	case Cylinder:
		c.mesh = rl.GenMeshCylinder(0.5, 1, cylinderSlices)
		c.offset = [3]float32{0, -0.5, 0}
	case Cone:
		c.mesh = rl.GenMeshCone(0.5, 1, coneSlices)
		c.offset = [3]float32{0, -0.5, 0}
	default:
		return cached{}, false
	}
	c.mtl = rl.LoadMaterialDefault()
	if shader := r.litShader(); rl.IsShaderValid(shader) {
		c.mtl.Shader = shader
	}
	r.cache[name] = c
	return c, true
}

// Draw draws one unit primitive scaled to scale, turned by yaw radians about Y, centred at position and tinted.
// Must be called between BeginMode3D and EndMode3D. Unknown names are skipped.
func (r *Registry) Draw(name string, position, scale [3]float32, yaw float32, tint color.RGBA) {
	c, ok := r.ensure(name)
	if !ok {
		return
	}
	if albedo := c.mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = tint
	}
	r.setUniforms(c.mtl.Shader)
	rl.DrawMesh(c.mesh, c.mtl, Transform(position, scale, yaw, c.offset))
}

// Transform builds offset, then scale, then yaw, then translate. Zero scale components count as 1.
func Transform(position, scale [3]float32, yaw float32, offset [3]float32) rl.Matrix {
	for i := range scale {
		if scale[i] == 0 {
			scale[i] = 1
		}
	}
	m := rl.MatrixTranslate(offset[0], offset[1], offset[2])
	m = rl.MatrixMultiply(m, rl.MatrixScale(scale[0], scale[1], scale[2]))
	m = rl.MatrixMultiply(m, rl.MatrixRotateY(yaw))
	return rl.MatrixMultiply(m, rl.MatrixTranslate(position[0], position[1], position[2]))
}

// setUniforms copies view and light into local arrays before handing them to cgo.
func (r *Registry) setUniforms(shader rl.Shader) {
	if !rl.IsShaderValid(shader) {
		return
	}
	viewPos := r.viewPos
	dir := r.light.Dir
	lightColor := r.light.Color
	amb := r.light.Ambient
	if loc := rl.GetShaderLocation(shader, "viewPos"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, viewPos[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightDir"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, dir[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "ambient"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, amb[:], rl.ShaderUniformVec4, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightColor"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, lightColor[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightIntensity"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{r.light.Intensity}, rl.ShaderUniformFloat)
	}
}

// Unload frees meshes, materials and the shared shader. The registry can be reused afterwards.
func (r *Registry) Unload() {
	// UnloadMaterial also frees a non-default shader; swap in the default one so the shared shader is freed once.
	def := rl.LoadMaterialDefault()
	for name, c := range r.cache {
		rl.UnloadMesh(&c.mesh)
		c.mtl.Shader = def.Shader
		rl.UnloadMaterial(c.mtl)
		delete(r.cache, name)
	}
	rl.UnloadMaterial(def)
	if r.loaded {
		rl.UnloadShader(r.shader)
		r.loaded = false
	}
}

// Lambert diffuse plus ambient; materials in this scene are matte.
const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragPosition;
out vec3 fragNormal;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragNormal = mat3(matModel) * vertexNormal;
  gl_Position = matProjection * matView * worldPos;
}
`
	litFS = `#version 330
in vec3 fragPosition;
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 lightDir;
uniform vec4 ambient;
uniform vec3 lightColor;
uniform float lightIntensity;
out vec4 finalColor;
void main() {
  vec3 N = normalize(fragNormal);
  if (dot(N, viewPos - fragPosition) < 0.0) {
    N = -N;
  }
  float NdotL = max(dot(N, normalize(lightDir)), 0.0);
  vec3 diffuse = colDiffuse.rgb * NdotL * lightColor * lightIntensity;
  finalColor = vec4(ambient.rgb * colDiffuse.rgb + diffuse, colDiffuse.a);
}
`
)

package primitives

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// cached holds mesh and material for a primitive type. Created lazily on
// first Draw so GPU resources are allocated after the window/GL context
// exists.
type cached struct {
	mesh rl.Mesh
	mtl  rl.Material
}

// Registry maps primitive type names to mesh+material. The demo needs two:
// "cube" for pieces and "plane" for the board surface.
type Registry struct {
	cache    map[string]cached
	viewPos  [3]float32 // camera position, set each frame for lighting
	lightDir [3]float32 // direction to light (normalized), set each frame
}

// NewRegistry returns a registry with no primitives; meshes are created on
// first use.
func NewRegistry() *Registry {
	return &Registry{
		cache:    make(map[string]cached),
		lightDir: [3]float32{0.5, 1, 0.5}, // default: from above-right
	}
}

// SetView sets camera position and direction-to-light for this frame. Call
// once per frame before drawing so lit primitives get correct shading.
func (r *Registry) SetView(viewPos, lightDir [3]float32) {
	r.viewPos = viewPos
	r.lightDir = lightDir
}

// defaultPlaneResX/Z: 1 subdivision = single quad (1×1 in XZ).
const defaultPlaneResX = 1
const defaultPlaneResZ = 1

// ensure creates the mesh and material for the given type if not yet cached.
// Both primitives share the simple lit shader (directional light + ambient).
func (r *Registry) ensure(key string) {
	if _, ok := r.cache[key]; ok {
		return
	}
	var mesh rl.Mesh
	switch key {
	case "cube":
		mesh = rl.GenMeshCube(1, 1, 1)
	case "plane":
		mesh = rl.GenMeshPlane(1, 1, defaultPlaneResX, defaultPlaneResZ)
	default:
		return
	}
	mtl := rl.LoadMaterialDefault()
	if shader := loadLitShader(); rl.IsShaderValid(shader) {
		mtl.Shader = shader
	}
	r.cache[key] = cached{mesh: mesh, mtl: mtl}
}

// loadLitShader returns a shader that does simple directional light +
// ambient. Same vertex attributes as raylib meshes: vertexPosition,
// vertexTexCoord, vertexNormal.
func loadLitShader() rl.Shader {
	return rl.LoadShaderFromMemory(litVS, litFS)
}

const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragPosition;
out vec2 fragTexCoord;
out vec3 fragNormal;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragTexCoord = vertexTexCoord;
  fragNormal = mat3(matModel) * vertexNormal;
  gl_Position = matProjection * matView * worldPos;
}
`
	litFS = `#version 330
in vec3 fragPosition;
in vec2 fragTexCoord;
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 lightDir;
uniform vec4 ambient;
uniform vec3 lightColor;
uniform float lightIntensity;
uniform float specularPower;
uniform float specularStrength;
out vec4 finalColor;
void main() {
  vec4 tint = colDiffuse;
  vec3 N = normalize(fragNormal);
  vec3 L = normalize(lightDir);
  vec3 V = normalize(viewPos - fragPosition);
  float NdotL = max(dot(N, L), 0.0);
  vec3 diffuse = tint.rgb * NdotL * lightColor * lightIntensity;
  vec3 amb = ambient.rgb * tint.rgb;
  vec3 H = normalize(L + V);
  float NdotH = max(dot(N, H), 0.0);
  float spec = pow(NdotH, specularPower) * specularStrength;
  vec3 specular = lightColor * spec * (NdotL > 0.0 ? 1.0 : 0.0);
  finalColor = vec4(amb + diffuse + specular, tint.a);
}
`
)

// defaultAmbient is the ambient term (dim so shadowed areas aren't pure black).
var defaultAmbient = [4]float32{0.2, 0.22, 0.26, 1.0}

// defaultLightColor is a soft warm-white for the directional light.
var defaultLightColor = [3]float32{1.0, 0.98, 0.95}

// defaultLightIntensity scales the directional diffuse (0–1).
const defaultLightIntensity = float32(0.75)

// defaultSpecularPower controls highlight tightness (higher = smaller, sharper highlight).
const defaultSpecularPower = float32(48.0)

// defaultSpecularStrength scales specular contribution (0–1).
const defaultSpecularStrength = float32(0.35)

// setLitShaderUniforms sets viewPos, lightDir, ambient, light color/intensity, and specular on the given shader (cgo-safe: local arrays).
func (r *Registry) setLitShaderUniforms(shader rl.Shader) {
	if !rl.IsShaderValid(shader) {
		return
	}
	viewPos := [3]float32{r.viewPos[0], r.viewPos[1], r.viewPos[2]}
	lightDir := [3]float32{r.lightDir[0], r.lightDir[1], r.lightDir[2]}
	amb := [4]float32{defaultAmbient[0], defaultAmbient[1], defaultAmbient[2], defaultAmbient[3]}
	lightColor := [3]float32{defaultLightColor[0], defaultLightColor[1], defaultLightColor[2]}
	if loc := rl.GetShaderLocation(shader, "viewPos"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, viewPos[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightDir"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, lightDir[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "ambient"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, amb[:], rl.ShaderUniformVec4, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightColor"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, lightColor[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightIntensity"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{defaultLightIntensity}, rl.ShaderUniformFloat)
	}
	if loc := rl.GetShaderLocation(shader, "specularPower"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{defaultSpecularPower}, rl.ShaderUniformFloat)
	}
	if loc := rl.GetShaderLocation(shader, "specularStrength"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{defaultSpecularStrength}, rl.ShaderUniformFloat)
	}
}

// Draw draws one instance of the given type at position with scale (scale 0
// → 1) tinted with the given color. Must be called between BeginMode3D and
// EndMode3D, after SetView for this frame. Unknown types are skipped.
func (r *Registry) Draw(primType string, position, scale [3]float32, color rl.Color) {
	r.ensure(primType)
	c, ok := r.cache[primType]
	if !ok {
		return
	}
	if albedo := c.mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = color
	}
	r.setLitShaderUniforms(c.mtl.Shader)
	sx, sy, sz := scale[0], scale[1], scale[2]
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	if sz == 0 {
		sz = 1
	}
	scaleM := rl.MatrixScale(sx, sy, sz)
	transM := rl.MatrixTranslate(position[0], position[1], position[2])
	transform := rl.MatrixMultiply(scaleM, transM)
	rl.DrawMesh(c.mesh, c.mtl, transform)
}

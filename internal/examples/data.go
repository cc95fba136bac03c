package examples

import "github.com/go-gl/mathgl/mgl32"

// Asset paths relative to the asset root.
const (
	containerTexture   = "textures/container.jpg"
	faceTexture        = "textures/awesomeface.png"
	container2Texture  = "textures/container2.png"
	container2Specular = "textures/container2_specular.png"
	skyboxDir          = "textures/skybox"
	skyboxExt          = ".bmp"
	backpackModel      = "models/backpack/backpack.obj"
)

// Shader paths.
const (
	basicVert         = "shaders/basic.vert"
	basicFrag         = "shaders/basic.frag"
	uniformFrag       = "shaders/uniform.frag"
	colorVert         = "shaders/color.vert"
	colorFrag         = "shaders/color.frag"
	texturedVert      = "shaders/textured.vert"
	texturedFrag      = "shaders/textured.frag"
	mixFrag           = "shaders/mix.frag"
	transformVert     = "shaders/transform.vert"
	mvpVert           = "shaders/mvp.vert"
	lampVert          = "shaders/lamp.vert"
	lampFrag          = "shaders/lamp.frag"
	lightingVert      = "shaders/lighting.vert"
	colorsFrag        = "shaders/colors.frag"
	phongAmbientFrag  = "shaders/phong_ambient.frag"
	phongDiffuseFrag  = "shaders/phong_diffuse.frag"
	phongSpecularFrag = "shaders/phong_specular.frag"
	materialFrag      = "shaders/material.frag"
	lightingMapsFrag  = "shaders/lighting_maps.frag"
	multiLightsFrag   = "shaders/multiple_lights.frag"
	modelFrag         = "shaders/model.frag"
	skyboxVert        = "shaders/skybox.vert"
	skyboxFrag        = "shaders/skybox.frag"
	cubemapFrag       = "shaders/cubemap.frag"
)

// triangleVertices is one triangle in normalized device coordinates.
var triangleVertices = []float32{
	-0.5, -0.5, 0.0,
	0.5, -0.5, 0.0,
	0.0, 0.5, 0.0,
}

// coloredTriangle interleaves position and color.
var coloredTriangle = []float32{
	// positions     // colors
	0.5, -0.5, 0.0, 1.0, 0.0, 0.0,
	-0.5, -0.5, 0.0, 0.0, 1.0, 0.0,
	0.0, 0.5, 0.0, 0.0, 0.0, 1.0,
}

// quadPositions are the four corners of a quad, top right first.
var quadPositions = []float32{
	0.5, 0.5, 0.0,
	0.5, -0.5, 0.0,
	-0.5, -0.5, 0.0,
	-0.5, 0.5, 0.0,
}

// quadIndices draws the quad as two triangles.
var quadIndices = []uint32{
	0, 1, 3,
	1, 2, 3,
}

// texturedQuad interleaves position, color and texture coordinates.
var texturedQuad = []float32{
	// positions     // colors      // uv
	0.5, 0.5, 0.0, 1.0, 0.0, 0.0, 1.0, 1.0,
	0.5, -0.5, 0.0, 0.0, 1.0, 0.0, 1.0, 0.0,
	-0.5, -0.5, 0.0, 0.0, 0.0, 1.0, 0.0, 0.0,
	-0.5, 0.5, 0.0, 1.0, 1.0, 0.0, 0.0, 1.0,
}

// cubeVertices is a unit cube as 36 vertices of position, normal and uv.
var cubeVertices = []float32{
	// back face (-Z)
	-0.5, -0.5, -0.5, 0.0, 0.0, -1.0, 0.0, 0.0,
	0.5, -0.5, -0.5, 0.0, 0.0, -1.0, 1.0, 0.0,
	0.5, 0.5, -0.5, 0.0, 0.0, -1.0, 1.0, 1.0,
	0.5, 0.5, -0.5, 0.0, 0.0, -1.0, 1.0, 1.0,
	-0.5, 0.5, -0.5, 0.0, 0.0, -1.0, 0.0, 1.0,
	-0.5, -0.5, -0.5, 0.0, 0.0, -1.0, 0.0, 0.0,

	// front face (+Z)
	-0.5, -0.5, 0.5, 0.0, 0.0, 1.0, 0.0, 0.0,
	0.5, -0.5, 0.5, 0.0, 0.0, 1.0, 1.0, 0.0,
	0.5, 0.5, 0.5, 0.0, 0.0, 1.0, 1.0, 1.0,
	0.5, 0.5, 0.5, 0.0, 0.0, 1.0, 1.0, 1.0,
	-0.5, 0.5, 0.5, 0.0, 0.0, 1.0, 0.0, 1.0,
	-0.5, -0.5, 0.5, 0.0, 0.0, 1.0, 0.0, 0.0,

	// left face (-X)
	-0.5, 0.5, 0.5, -1.0, 0.0, 0.0, 1.0, 0.0,
	-0.5, 0.5, -0.5, -1.0, 0.0, 0.0, 1.0, 1.0,
	-0.5, -0.5, -0.5, -1.0, 0.0, 0.0, 0.0, 1.0,
	-0.5, -0.5, -0.5, -1.0, 0.0, 0.0, 0.0, 1.0,
	-0.5, -0.5, 0.5, -1.0, 0.0, 0.0, 0.0, 0.0,
	-0.5, 0.5, 0.5, -1.0, 0.0, 0.0, 1.0, 0.0,

	// right face (+X)
	0.5, 0.5, 0.5, 1.0, 0.0, 0.0, 1.0, 0.0,
	0.5, 0.5, -0.5, 1.0, 0.0, 0.0, 1.0, 1.0,
	0.5, -0.5, -0.5, 1.0, 0.0, 0.0, 0.0, 1.0,
	0.5, -0.5, -0.5, 1.0, 0.0, 0.0, 0.0, 1.0,
	0.5, -0.5, 0.5, 1.0, 0.0, 0.0, 0.0, 0.0,
	0.5, 0.5, 0.5, 1.0, 0.0, 0.0, 1.0, 0.0,

	// bottom face (-Y)
	-0.5, -0.5, -0.5, 0.0, -1.0, 0.0, 0.0, 1.0,
	0.5, -0.5, -0.5, 0.0, -1.0, 0.0, 1.0, 1.0,
	0.5, -0.5, 0.5, 0.0, -1.0, 0.0, 1.0, 0.0,
	0.5, -0.5, 0.5, 0.0, -1.0, 0.0, 1.0, 0.0,
	-0.5, -0.5, 0.5, 0.0, -1.0, 0.0, 0.0, 0.0,
	-0.5, -0.5, -0.5, 0.0, -1.0, 0.0, 0.0, 1.0,

	// top face (+Y)
	-0.5, 0.5, -0.5, 0.0, 1.0, 0.0, 0.0, 1.0,
	0.5, 0.5, -0.5, 0.0, 1.0, 0.0, 1.0, 1.0,
	0.5, 0.5, 0.5, 0.0, 1.0, 0.0, 1.0, 0.0,
	0.5, 0.5, 0.5, 0.0, 1.0, 0.0, 1.0, 0.0,
	-0.5, 0.5, 0.5, 0.0, 1.0, 0.0, 0.0, 0.0,
	-0.5, 0.5, -0.5, 0.0, 1.0, 0.0, 0.0, 1.0,
}

// cubePositions places the ten cubes of the multi-cube scenes.
var cubePositions = []mgl32.Vec3{
	{0.0, 0.0, 0.0},
	{2.0, 5.0, -15.0},
	{-1.5, -2.2, -2.5},
	{-3.8, -2.0, -12.3},
	{2.4, -0.4, -3.5},
	{-1.7, 3.0, -7.5},
	{1.3, -2.0, -2.5},
	{1.5, 2.0, -2.5},
	{1.5, 0.2, -1.5},
	{-1.3, 1.0, -1.5},
}

// pointLightPositions places the lamps of the light casters scene.
var pointLightPositions = []mgl32.Vec3{
	{0.7, 0.2, 2.0},
	{2.3, -3.3, -4.0},
	{-4.0, 2.0, -12.0},
	{0.0, 0.0, -3.0},
}

// cubeModel returns the model matrix of the i-th scene cube: translated to
// its position and tilted 20 degrees per index around (1, 0.3, 0.5).
func cubeModel(i int, extraAngle float32) mgl32.Mat4 {
	angle := mgl32.DegToRad(20*float32(i)) + extraAngle
	axis := mgl32.Vec3{1.0, 0.3, 0.5}.Normalize()
	return mgl32.Translate3D(cubePositions[i].Elem()).Mul4(mgl32.HomogRotate3D(angle, axis))
}

// lampModel returns a small cube at position.
func lampModel(position mgl32.Vec3, scale float32) mgl32.Mat4 {
	return mgl32.Translate3D(position.Elem()).Mul4(mgl32.Scale3D(scale, scale, scale))
}

// fallbackOBJ is drawn by the model example when no model file is present.
const fallbackOBJ = `# unit cube
o cube
v -0.5 -0.5  0.5
v  0.5 -0.5  0.5
v  0.5  0.5  0.5
v -0.5  0.5  0.5
v -0.5 -0.5 -0.5
v  0.5 -0.5 -0.5
v  0.5  0.5 -0.5
v -0.5  0.5 -0.5
vt 0 0
vt 1 0
vt 1 1
vt 0 1
f 1/1 2/2 3/3 4/4
f 6/1 5/2 8/3 7/4
f 5/1 1/2 4/3 8/4
f 2/1 6/2 7/3 3/4
f 4/1 3/2 7/3 8/4
f 5/1 6/2 2/3 1/4
`

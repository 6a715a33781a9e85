package render

import (
	"math"

	"orrery/pkg/math3d"
)

// ShaderMode selects which material shades a draw call. The set is closed;
// unknown modes shade black.
type ShaderMode int

const (
	ShaderStar ShaderMode = iota + 1
	ShaderBrokenTerrain
	ShaderGasGiant
	ShaderIcy
	ShaderVolcanic
	ShaderEarthLike
	ShaderAlien
	ShaderHull
)

// Shade evaluates the material selected by u.Mode for one fragment. Every
// material is a pure function of its inputs, which keeps shading
// order-independent and trivially testable.
func Shade(frag Fragment, u *Uniforms) Color {
	switch u.Mode {
	case ShaderStar:
		return starShader(frag, u)
	case ShaderBrokenTerrain:
		return brokenTerrainShader(frag, u)
	case ShaderGasGiant:
		return gasGiantShader(frag, u)
	case ShaderIcy:
		return icyPlanetShader(frag, u)
	case ShaderVolcanic:
		return volcanicPlanetShader(frag, u)
	case ShaderEarthLike:
		return earthLikePlanetShader(frag, u)
	case ShaderAlien:
		return alienPlanetShader(frag, u)
	case ShaderHull:
		return hullShader(frag, u)
	default:
		return Black
	}
}

// diffuse is the shared lambert term against the material key light.
func diffuse(normal math3d.Vec3) float64 {
	return math.Max(0, normal.Normalize().Dot(materialLightDir))
}

func starShader(frag Fragment, u *Uniforms) Color {
	brightColor := RGB(255, 223, 0)
	darkColor := RGB(255, 69, 0)

	// Pulsating surface: noise animated along the third axis.
	const zoom = 300.0
	t := u.Time * 0.05
	noise := u.Noise.Noise3D(frag.Position.X*zoom, frag.Position.Y*zoom, t)

	intensity := math.Sin(t*2)*0.3 + 0.7
	return darkColor.Lerp(brightColor, noise).Scale(intensity).Scale(frag.Intensity)
}

func brokenTerrainShader(frag Fragment, u *Uniforms) Color {
	baseColor := RGB(140, 130, 120)
	crackColor := RGB(200, 200, 255)
	dirtColor := RGB(100, 70, 40)

	const zoom = 10.0
	const crackZoom = 30.0

	noise := u.Noise.Noise2D(frag.Position.X*zoom, frag.Position.Y*zoom)
	crackNoise := u.Noise.Noise2D(frag.Position.X*crackZoom, frag.Position.Y*crackZoom)

	terrainColor := baseColor
	if noise < 0.2 {
		terrainColor = dirtColor
	}

	crackIntensity := clamp01(math.Abs(crackNoise))
	return terrainColor.Lerp(crackColor, crackIntensity).Scale(frag.Intensity)
}

func gasGiantShader(frag Fragment, u *Uniforms) Color {
	layer1 := RGB(255, 165, 0)
	layer2 := RGB(255, 215, 0)
	layer3 := RGB(255, 200, 26)
	layer4 := RGB(255, 179, 34)
	ringColor := RGB(238, 238, 214)

	const zoomPlanet = 10.0
	const zoomRing = 5.0
	const ox, oy = 25.0, 25.0
	x, y := frag.Position.X, frag.Position.Y
	t := u.Time * 0.5

	// Banded layers keyed on stretched noise.
	noise := math.Abs(u.Noise.Noise2D(x*zoomPlanet*ox, y*zoomPlanet*oy))
	var layerColor Color
	switch {
	case noise < 0.15:
		layerColor = layer1
	case noise < 0.7:
		layerColor = layer2
	case noise < 0.75:
		layerColor = layer3
	default:
		layerColor = layer4
	}

	cloudNoise := math.Abs(u.Noise.Noise2D(x*zoomPlanet+100, y*zoomPlanet+100)) * 0.3
	cloudColor := layerColor.Lerp(White, cloudNoise*0.1)
	planetColor := cloudColor.Scale(clamp01(frag.Intensity * 3))

	// Drifting ring band around a fixed latitude.
	const ringDistance = 0.05
	ringNoise := math.Abs(u.Noise.Noise2D(x*zoomRing+50+t, y*zoomRing+50+t)) * 0.5

	ring := Black
	if math.Abs(frag.Position.Y-ringDistance) < 0.05 {
		ring = ringColor.Lerp(Black, ringNoise*0.7)
	}

	return planetColor.Blend(ring, 0.4)
}

func icyPlanetShader(frag Fragment, u *Uniforms) Color {
	baseNoise := u.Noise.Noise2D(frag.Position.X*5, frag.Position.Y*5)
	detailNoise := u.Noise.Noise2D(frag.Position.X*10, frag.Position.Y*10)

	iceColor := RGB(173, 216, 230)
	highlightColor := White
	shadowColor := RGB(100, 149, 237)

	baseColor := iceColor.Lerp(highlightColor, baseNoise)
	colorWithDetail := baseColor.Lerp(shadowColor, detailNoise*0.2)

	normal := frag.Normal.Normalize()
	diffuseIntensity := diffuse(frag.Normal)

	// Specular glint off the ice crust.
	specular := math.Pow(math.Max(0, normal.Dot(materialLightDir.Negate())), 16)
	litColor := colorWithDetail.Scale(0.4 + 0.6*diffuseIntensity).Add(highlightColor.Scale(specular))

	translucency := clamp01(baseNoise*0.5 + 0.5)
	return litColor.Lerp(White, translucency*0.2).Scale(frag.Intensity)
}

func volcanicPlanetShader(frag Fragment, u *Uniforms) Color {
	brightColor := RGB(255, 240, 0)
	darkColor := RGB(130, 20, 0)
	baseColor := RGB(30, 30, 30)
	lavaColor := RGB(255, 100, 0)

	position := math3d.V3(frag.Position.X, frag.Position.Y, frag.Depth)

	// Slow pulsation moves the lava pockets along the depth axis.
	const baseFrequency = 0.2
	const pulsateAmplitude = 0.5
	t := u.Time * 0.01
	pulsate := math.Sin(t*baseFrequency) * pulsateAmplitude

	const zoom = 1000.0
	noise1 := u.Noise.Noise3D(position.X*zoom, position.Y*zoom, (position.Z+pulsate)*zoom)
	noise2 := u.Noise.Noise3D((position.X+1000)*zoom, (position.Y+1000)*zoom, (position.Z+1000+pulsate)*zoom)
	lavaNoise := (noise1 + noise2) * 0.5

	detailNoise := u.Noise.Noise2D(frag.Position.X*20, frag.Position.Y*20)
	roughNoise := u.Noise.Noise2D(frag.Position.X*5, frag.Position.Y*5)

	surfaceDetail := baseColor.Lerp(darkColor, roughNoise*0.5)
	lavaDetail := lavaColor.Lerp(RGB(255, 140, 0), detailNoise*0.5)

	finalColor := surfaceDetail.Lerp(lavaDetail, lavaNoise*frag.Intensity)

	const lavaThreshold = 0.5
	if lavaNoise > lavaThreshold {
		return finalColor.Lerp(brightColor, 0.5)
	}
	return finalColor
}

func earthLikePlanetShader(frag Fragment, u *Uniforms) Color {
	const zoom = 170.0
	const ox, oy = 700.0, 600.0
	x, y := frag.Position.X, frag.Position.Y
	t := u.Time * 0.5

	noise := u.Noise.Noise2D(x*zoom+ox, y*zoom+oy)

	const waterThreshold = 0.50
	const landThreshold = 0.55

	waterColor := RGB(13, 105, 171)
	shoreColor := RGB(244, 164, 96)
	landColor := RGB(34, 139, 34)

	var baseColor Color
	switch {
	case noise < waterThreshold:
		baseColor = waterColor
	case noise < landThreshold:
		baseColor = shoreColor
	default:
		baseColor = landColor
	}

	litColor := baseColor.Scale(0.4 + 0.6*diffuse(frag.Normal))

	// Cloud layer distorted away from the continent noise.
	const cloudZoom = 20.0
	const cloudOffset = 37.0
	ovalX := math.Sin(x*cloudZoom*0.8+ox+t) * cloudOffset
	ovalY := math.Cos(y*cloudZoom*0.95+oy) * cloudOffset
	cloudNoise := u.Noise.Noise2D(ovalX, ovalY)

	const cloudThreshold = 0.45
	if cloudNoise > cloudThreshold {
		litColor = litColor.Blend(White, 0.5)
	}
	return litColor.Scale(frag.Intensity)
}

func alienPlanetShader(frag Fragment, u *Uniforms) Color {
	const zoom = 50.0
	noise := u.Noise.Noise2D(frag.Position.X*zoom, frag.Position.Y*zoom)

	baseColor := RGB(75, 0, 130)
	secondaryColor := RGB(0, 255, 255)
	tertiaryColor := RGB(243, 22, 206)

	var planetColor Color
	switch {
	case noise < 0.3:
		planetColor = baseColor
	case noise < 0.6:
		planetColor = secondaryColor
	default:
		planetColor = tertiaryColor
	}

	emissionStrength := clamp01(0.5 + noise*1.5)
	emissionColor := RGB(255, 20, 147).Scale(emissionStrength)

	finalColor := planetColor.Scale(0.7).Add(emissionColor.Scale(0.3))

	litColor := finalColor.Scale(0.4 + 0.6*diffuse(frag.Normal))
	return litColor.Scale(frag.Intensity)
}

func hullShader(frag Fragment, u *Uniforms) Color {
	baseColor := RGB(200, 200, 200)
	highlightColor := White
	shadowColor := RGB(120, 120, 120)

	const zoom = 15.0
	noise := u.Noise.Noise2D(frag.Position.X*zoom, frag.Position.Y*zoom)

	colorVariation := baseColor.Lerp(shadowColor, noise*0.1)

	normal := frag.Normal.Normalize()
	diffuseIntensity := math.Max(0, normal.Dot(materialLightDir))

	// Soft metallic highlight towards the camera.
	viewDir := math3d.V3(0, 0, 1)
	reflectDir := normal.Scale(2 * normal.Dot(materialLightDir)).Sub(materialLightDir)
	specular := math.Pow(math.Max(0, reflectDir.Dot(viewDir)), 16)

	litColor := colorVariation.Scale(0.4 + 0.6*diffuseIntensity).Add(highlightColor.Scale(specular))
	return litColor.Scale(frag.Intensity)
}

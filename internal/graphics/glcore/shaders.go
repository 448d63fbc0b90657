package glcore

import "fmt"

// Per-vertex lighting with the classic fixed-function equation:
// emission + sceneAmbient*matAmbient + sum over lights of
// ambient + diffuse*max(N.L,0) + specular*max(N.H,0)^shininess.
// The viewer is at infinity, so H = normalize(L + (0,0,1)).
var vertexShader = fmt.Sprintf(`#version 410 core
#define MAX_LIGHTS %d
layout(location = 0) in vec3 aPos;
layout(location = 1) in vec3 aNormal;

uniform mat4 modelView;
uniform mat4 proj;
uniform mat3 normalMatrix;

uniform bool lighting;
uniform bool normalizeNormals;
uniform vec4 sceneAmbient;

uniform bool lightEnabled[MAX_LIGHTS];
uniform vec4 lightAmbient[MAX_LIGHTS];
uniform vec4 lightDiffuse[MAX_LIGHTS];
uniform vec4 lightSpecular[MAX_LIGHTS];
uniform vec4 lightPosition[MAX_LIGHTS];

uniform vec4 matAmbient;
uniform vec4 matDiffuse;
uniform vec4 matSpecular;
uniform vec4 matEmission;
uniform float matShininess;

out vec4 vColor;
flat out vec4 vFlatColor;

void main() {
	vec4 eyePos = modelView * vec4(aPos, 1.0);
	gl_Position = proj * eyePos;

	vec4 color = vec4(1.0);
	if (lighting) {
		vec3 n = normalMatrix * aNormal;
		if (normalizeNormals) {
			n = normalize(n);
		}
		vec4 sum = matEmission + sceneAmbient * matAmbient;
		for (int i = 0; i < MAX_LIGHTS; i++) {
			if (!lightEnabled[i]) {
				continue;
			}
			vec3 l;
			if (lightPosition[i].w == 0.0) {
				l = normalize(lightPosition[i].xyz);
			} else {
				l = normalize(lightPosition[i].xyz / lightPosition[i].w - eyePos.xyz / eyePos.w);
			}
			float nDotL = max(dot(n, l), 0.0);
			sum += lightAmbient[i] * matAmbient;
			sum += nDotL * lightDiffuse[i] * matDiffuse;
			if (nDotL > 0.0) {
				vec3 h = normalize(l + vec3(0.0, 0.0, 1.0));
				sum += pow(max(dot(n, h), 0.0), matShininess) * lightSpecular[i] * matSpecular;
			}
		}
		color = vec4(clamp(sum.rgb, 0.0, 1.0), clamp(matDiffuse.a, 0.0, 1.0));
	}
	vColor = color;
	vFlatColor = color;
}
`, maxLights)

var fragmentShader = `#version 410 core
in vec4 vColor;
flat in vec4 vFlatColor;
uniform bool smoothShading;
out vec4 FragColor;
void main() {
	FragColor = smoothShading ? vColor : vFlatColor;
}
`

package render

// Shader sources are embedded so the binary does not depend on the working
// directory for anything but texture assets.

const blockVertexShader = `#version 460 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;
layout (location = 2) in vec2 aTexCoord;

uniform mat4 view;
uniform mat4 projection;

out vec3 Normal;
out vec2 TexCoord;

void main() {
    gl_Position = projection * view * vec4(aPos, 1.0);
    Normal = aNormal;
    TexCoord = aTexCoord;
}
`

const blockFragmentShader = `#version 460 core
in vec3 Normal;
in vec2 TexCoord;

uniform sampler2D blockTexture;

out vec4 FragColor;

void main() {
    // Cheap directional shading so adjoining faces read as distinct
    vec3 lightDir = normalize(vec3(0.4, 1.0, 0.6));
    float diffuse = max(dot(normalize(Normal), lightDir), 0.0);
    float light = 0.55 + 0.45 * diffuse;
    FragColor = vec4(texture(blockTexture, TexCoord).rgb * light, 1.0);
}
`

const overlayVertexShader = `#version 460 core
layout (location = 0) in vec2 aPos;

void main() {
    gl_Position = vec4(aPos, 0.0, 1.0);
}
`

const overlayFragmentShader = `#version 460 core
out vec4 FragColor;

void main() {
    FragColor = vec4(0.82, 0.82, 0.82, 1.0);
}
`

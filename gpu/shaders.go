package gpu

// FullscreenVert draws a single triangle covering the viewport with no vertex
// attributes: draw it with DrawArrays(TRIANGLES, 0, 3) and an empty VAO.
// fragTexCoord matches what raylib-style fragment shaders expect.
const FullscreenVert = `
#version 330 core
out vec2 fragTexCoord;
out vec4 fragColor;
void main() {
	float x = float((gl_VertexID & 1) << 2) - 1;
	float y = float((gl_VertexID & 2) << 1) - 1;
	fragTexCoord = vec2(x, y) * 0.5 + 0.5;
	fragColor = vec4(1);
	gl_Position = vec4(x, y, 0, 1);
}
`

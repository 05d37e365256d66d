package render

// SampleCode returns a snippet for the given language, useful for trying the
// analyzer without supplying a file. Unknown languages fall back to Python.
func SampleCode(language string) string {
	if sample, ok := sampleCode[language]; ok {
		return sample
	}
	return sampleCode["python"]
}

var sampleCode = map[string]string{
	"python": `# Sample Python Code
def fibonacci(n):
    if n <= 1:
        return n
    return fibonacci(n-1) + fibonacci(n-2)

# Multiple API calls in a loop
for i in range(100):
    response = requests.get('https://api.example.com/data')
    data = response.json()
    with open(f'file_{i}.txt', 'w') as f:
        f.write(str(data))

# Inefficient nested loops
for i in range(1000):
    for j in range(1000):
        print(i * j)
`,
	"javascript": `// Sample JavaScript Code
function fibonacci(n) {
    if (n <= 1) return n;
    return fibonacci(n - 1) + fibonacci(n - 2);
}

// Multiple API calls in a loop
for (let i = 0; i < 100; i++) {
    fetch('https://api.example.com/data')
        .then(response => response.json())
        .then(data => {
            fs.writeFileSync(` + "`file_${i}.txt`" + `, JSON.stringify(data));
        });
}

// Inefficient nested loops
for (let i = 0; i < 1000; i++) {
    for (let j = 0; j < 1000; j++) {
        console.log(i * j);
    }
}
`,
	"typescript": `// Sample TypeScript Code
function fibonacci(n: number): number {
    if (n <= 1) return n;
    return fibonacci(n - 1) + fibonacci(n - 2);
}

// Multiple API calls in a loop
for (let i = 0; i < 100; i++) {
    fetch('https://api.example.com/data')
        .then(response => response.json())
        .then(data => {
            console.log(data);
        });
}
`,
	"java": `// Sample Java Code
public class Example {
    public static int fibonacci(int n) {
        if (n <= 1) return n;
        return fibonacci(n - 1) + fibonacci(n - 2);
    }

    public static void main(String[] args) {
        // Inefficient nested loops
        for (int i = 0; i < 1000; i++) {
            for (int j = 0; j < 1000; j++) {
                System.out.println(i * j);
            }
        }
    }
}
`,
	"cpp": `// Sample C++ Code
#include <iostream>
using namespace std;

int fibonacci(int n) {
    if (n <= 1) return n;
    return fibonacci(n - 1) + fibonacci(n - 2);
}

int main() {
    // Inefficient nested loops
    for (int i = 0; i < 1000; i++) {
        for (int j = 0; j < 1000; j++) {
            cout << i * j << endl;
        }
    }
    return 0;
}
`,
}

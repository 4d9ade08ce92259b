package scaffold

const helloSkill = `---
name: hello-world
description: A simple example skill that demonstrates Claude Code skill structure
---

# Hello World Skill

This is a demonstration skill showing how skills work.

## When to Use

Apply this skill when the user asks you to say hello or demonstrate skills.

## Instructions

Respond with a friendly greeting explaining this came from a skill.
`

const helloCommand = `---
description: Say hello - example slash command
---

When the user runs /hello, respond with a friendly greeting.
Explain that this is an example command from their agent-resources repo.
`

const helloAgent = `---
description: Example subagent that greets users
---

You are a friendly greeter subagent.
When invoked, introduce yourself and explain that you're an example agent
from the user's agent-resources repository.
`

const readmeTemplate = `# agent-resources

My personal collection of Claude Code skills, commands, and agents.

## Structure

` + "```" + `
.claude/
├── skills/       # Skill directories with SKILL.md
├── commands/     # Slash command .md files
└── agents/       # Subagent .md files
` + "```" + `

## Usage

Others can install my resources using:

` + "```bash" + `
# Install a skill
agentres add skill {username}/hello-world

# Install a command
agentres add command {username}/hello

# Install an agent
agentres add agent {username}/hello-agent
` + "```" + `

## Adding Resources

- **Skills**: Create a directory in ` + "`.claude/skills/<name>/`" + ` with a ` + "`SKILL.md`" + ` file
- **Commands**: Create a ` + "`.md`" + ` file in ` + "`.claude/commands/`" + `
- **Agents**: Create a ` + "`.md`" + ` file in ` + "`.claude/agents/`" + `
`

const gitignoreTemplate = `# OS
.DS_Store
Thumbs.db

# IDE
.idea/
.vscode/
*.swp
*.swo
`
